package talents

// FixtureJobs returns the demo job catalog. It seeds development databases
// and backs tests; callers get a fresh slice every time.
func FixtureJobs() []JobFields {
	return []JobFields{
		{
			Title:            "Engenheiro de Prompt Sr",
			Mission:          "Criar a biblioteca de prompts mais eficiente do mercado para escalar operações.",
			Responsibilities: "- Desenvolver metaprompts complexos\n- Otimizar contexto de LLMs\n- Documentar padrões de engenharia\n- Treinar time em prompting",
			SuccessIndicator: "Redução de 30% no tempo de resposta da IA e aumento de precisão para 95%.",
			OKR:              "O: Dominar a engenharia de prompt. KR1: 100 prompts validados em produção.",
			Status:           JobStatusActive,
			WorkType:         "Remoto",
			Location:         "Brasil",
		},
		{
			Title:            "Product Designer (IA)",
			Mission:          "Desenhar interfaces que tornem a IA invisível e mágica para o usuário final.",
			Responsibilities: "- Prototipar fluxos de chat conversacional\n- Criar sistema de design para AI agêntica\n- Realizar testes de usabilidade com protótipos funcionais",
			SuccessIndicator: "NPS de 90+ na nova feature de chat e redução de fricção no onboarding.",
			OKR:              "O: UX de classe mundial. KR1: Tempo de tarefa reduzido em 50%.",
			Status:           JobStatusActive,
			WorkType:         "Remoto",
			Location:         "Brasil",
		},
		{
			Title:            "Especialista em Automação (Make/N8N)",
			Mission:          "Automatizar processos manuais repetitivos integrando CRMs, IA e ferramentas de marketing.",
			Responsibilities: "- Criar cenários complexos no N8N\n- Integrar OpenAI API com bancos de dados\n- Monitorar falhas e custos de execução",
			SuccessIndicator: "Economia de 100 horas/homem por mês em tarefas operacionais.",
			OKR:              "O: Eficiência Operacional Extrema. KR1: 5 processos core 100% automatizados.",
			Status:           JobStatusActive,
			WorkType:         "Remoto",
			Location:         "São Paulo, SP",
		},
		{
			Title:            "Copywriter Specialist (Direct Response + AI)",
			Mission:          "Escrever cartas de vendas e VSLs que convertem, potencializados por IA para velocidade.",
			Responsibilities: "- Escrever scripts de VSL\n- Criar sequências de email marketing\n- Treinar IA com a voz da marca",
			SuccessIndicator: "Aumento de 20% na taxa de conversão do funil principal.",
			OKR:              "O: Recorde de faturamento. KR1: R$ 1MM em vendas no próximo lançamento.",
			Status:           JobStatusActive,
			WorkType:         "Remoto",
			Location:         "Brasil",
		},
		{
			Title:            "Desenvolvedor Fullstack (Python/React)",
			Mission:          "Construir a plataforma de ensino voltada para IA da Academia Lendária.",
			Responsibilities: "- Desenvolver frontend em Next.js\n- Criar APIs em FastAPI/Python\n- Integrar serviços de LLM via LangChain",
			SuccessIndicator: "Zero downtime crítico e carregamento de páginas < 1s.",
			OKR:              "O: Plataforma Robusta. KR1: Lançar módulo de comunidade integrado.",
			Status:           JobStatusActive,
			WorkType:         "Remoto",
			Location:         "Florianópolis, SC",
		},
		{
			Title:            "Head de Growth Hacking",
			Mission:          "Acelerar a aquisição de novos alunos utilizando estratégias não convencionais e IA.",
			Responsibilities: "- Gerir tráfego pago\n- Otimizar SEO programático com IA\n- Criar viral loops no produto",
			SuccessIndicator: "Crescimento de 15% WoW na base de leads qualificados.",
			OKR:              "O: Hipercrescimento. KR1: 10.000 novos leads/mês.",
			Status:           JobStatusActive,
			WorkType:         "Híbrido",
			Location:         "São Paulo, SP",
		},
		{
			Title:            "Customer Success Manager (B2B)",
			Mission:          "Garantir que empresas parceiras extraiam valor máximo das nossas consultorias de IA.",
			Responsibilities: "- Onboarding de novos clientes\n- Resolução de dúvidas técnicas de IA\n- Upsell de mentorias",
			SuccessIndicator: "Churn negativo (Net Revenue Retention > 110%).",
			OKR:              "O: Cliente Apaixonado. KR1: NPS 85+.",
			Status:           JobStatusActive,
			WorkType:         "Remoto",
			Location:         "Brasil",
		},
		{
			Title:            "Editor de Vídeo & Motion (AI Tools)",
			Mission:          "Produzir conteúdo visual de alto impacto em escala usando ferramentas de IA.",
			Responsibilities: "- Edição de cortes para redes sociais\n- Geração de assets visuais com Midjourney\n- Clonagem de voz para tradução de conteúdo",
			SuccessIndicator: "Dobrar o engajamento no Instagram e TikTok.",
			OKR:              "O: Domínio da Atenção. KR1: 5 vídeos virais (>100k views) no trimestre.",
			Status:           JobStatusDraft,
			WorkType:         "Remoto",
			Location:         "Brasil",
		},
		{
			Title:            "Data Scientist (Foco em LLMs)",
			Mission:          "Afinar modelos de linguagem para casos de uso específicos da educação.",
			Responsibilities: "- Fine-tuning de modelos Open Source (Llama 3, Mistral)\n- Criação de Datasets de qualidade\n- Avaliação de performance de RAG",
			SuccessIndicator: "Redução de alucinações da IA para < 5%.",
			OKR:              "O: IA Soberana. KR1: Deploy de modelo proprietário para correção de exercícios.",
			Status:           JobStatusPaused,
			WorkType:         "Remoto",
			Location:         "Remoto",
		},
		{
			Title:            "Comunity Manager",
			Mission:          "Engajar a comunidade de alunos tornando-a o lugar mais vibrante sobre IA no Brasil.",
			Responsibilities: "- Moderação de Discord\n- Criação de desafios semanais\n- Curadoria de conteúdo de alunos",
			SuccessIndicator: "DAU/MAU ratio superior a 40% na comunidade.",
			OKR:              "O: Comunidade Viva. KR1: 500 membros ativos diariamente.",
			Status:           JobStatusActive,
			WorkType:         "Remoto",
			Location:         "Brasil",
		},
	}
}

// FixtureTalents returns the demo talent pool.
func FixtureTalents() []TalentFields {
	return []TalentFields{
		{
			Name:        "Nilson Silva",
			Role:        "Especialista em Agentes IA, Automação N8N",
			Email:       "nilson.silva@mock.com",
			Phone:       "(11) 99999-1001",
			Location:    "São Paulo, SP",
			Bio:         `Dev especialista em automação. Construo "funcionários digitais" que trabalham 24/7. Foco em N8N, Typebot e Integrações.`,
			Products:    []string{"Formação", "Gestor IA"},
			Areas:       []string{"Produto", "Performance"},
			Seniority:   SenioritySenior,
			FixedSalary: "R$ 8.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=nilson",
			Tags:        []string{"N8N", "Automação", "APIs", "Typebot"},
		},
		{
			Name:        "Ana Clara Souza",
			Role:        "Engenharia de Dados & Python",
			Email:       "ana.clara@mock.com",
			Phone:       "(48) 98888-1002",
			Location:    "Florianópolis, SC",
			Bio:         "Apaixonada por dados. Migrei de BI para Engenharia de Dados focada em IA. Experiência com Pandas, Airflow e Vector Databases.",
			Products:    []string{"Formação", "Comunidade"},
			Areas:       []string{"Produto", "Backoffice"},
			Seniority:   SeniorityPleno,
			FixedSalary: "R$ 12.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=anaclara",
			Tags:        []string{"Python", "Data Engineering", "SQL", "Pinecone"},
		},
		{
			Name:        "Carlos Mendes",
			Role:        "Copywriter Senior & Prompt Designer",
			Email:       "carlos.m@mock.com",
			Phone:       "(21) 97777-1003",
			Location:    "Rio de Janeiro, RJ",
			Bio:         "Copywriter com 10 anos de mercado. Hoje uso GPT-4 para escalar minha produção sem perder a alma do texto. Crio personas impossíveis de distinguir de humanos.",
			Products:    []string{"80/20", "Mente Lendária"},
			Areas:       []string{"Marketing", "Comercial"},
			Seniority:   SenioritySenior,
			FixedSalary: "R$ 10.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=carlos",
			Tags:        []string{"Copywriting", "Storytelling", "Prompt Engineering"},
		},
		{
			Name:        "Beatriz Oliviera",
			Role:        "Product Designer (UX/UI)",
			Email:       "bia.oliveira@mock.com",
			Phone:       "(11) 96666-1004",
			Location:    "São Paulo, SP",
			Bio:         "Designer focada em interfaces conversacionais. Acredito que o futuro do design é invisível. Usuária power de Midjourney para assets.",
			Products:    []string{"Formação"},
			Areas:       []string{"Produto", "Marketing"},
			Seniority:   SeniorityPleno,
			FixedSalary: "R$ 9.500,00",
			Avatar:      "https://i.pravatar.cc/150?u=beatriz",
			Tags:        []string{"Figma", "UX Research", "Midjourney", "Design System"},
		},
		{
			Name:        "Eduardo Santos",
			Role:        "Fullstack Dev (Next.js)",
			Email:       "edu.santos@mock.com",
			Phone:       "(31) 95555-1005",
			Location:    "Belo Horizonte, MG",
			Bio:         "Dev Frontend que virou Fullstack. Amo o ecossistema Vercel. Construindo SaaS com IA no final de semana.",
			Products:    []string{"Comunidade", "Formação"},
			Areas:       []string{"Produto", "Suporte Técnico"},
			Seniority:   SeniorityPleno,
			FixedSalary: "R$ 11.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=eduardo",
			Tags:        []string{"React", "Next.js", "Typescript", "Tailwind"},
		},
		{
			Name:        "Fernanda Lima",
			Role:        "Gestora de Tráfego & Performance",
			Email:       "nanda.lima@mock.com",
			Phone:       "(41) 94444-1006",
			Location:    "Curitiba, PR",
			Bio:         "Gerencio mais de 100k/mês em ads. Uso IA para analisar métricas e gerar criativos em massa. Focada em ROAS.",
			Products:    []string{"80/20", "Gestor IA"},
			Areas:       []string{"Performance", "Comercial"},
			Seniority:   SeniorityPleno,
			FixedSalary: "R$ 7.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=fernanda",
			Tags:        []string{"Facebook Ads", "Google Ads", "Data Analysis", "Excel"},
		},
		{
			Name:        "Gabriel Costa",
			Role:        "Video Maker & Editor AI",
			Email:       "gabriel.costa@mock.com",
			Phone:       "(51) 93333-1007",
			Location:    "Porto Alegre, RS",
			Bio:         "Editor de vídeo rápido. Uso Premiere + Plugins de IA para reduzir tempo de edição em 70%. Mestre em cortes virais.",
			Products:    []string{"Mente Lendária"},
			Areas:       []string{"Marketing"},
			Seniority:   SeniorityJunior,
			FixedSalary: "R$ 5.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=gabriel",
			Tags:        []string{"Premiere", "After Effects", "CapCut", "RunwayML"},
		},
		{
			Name:        "Helena Martins",
			Role:        "Customer Success & Onboarding",
			Email:       "helena.m@mock.com",
			Phone:       "(85) 92222-1008",
			Location:    "Fortaleza, CE",
			Bio:         "Amo gente. Uso IA para personalizar o atendimento e prever churn, mas o contato humano é meu diferencial.",
			Products:    []string{"Comunidade", "Mentoria"},
			Areas:       []string{"Sucesso do Cliente", "Suporte Técnico"},
			Seniority:   SeniorityJunior,
			FixedSalary: "R$ 4.500,00",
			Avatar:      "https://i.pravatar.cc/150?u=helena",
			Tags:        []string{"Atendimento", "Zendesk", "Empatia", "CRM"},
		},
		{
			Name:        "Igor Viana",
			Role:        "Tech Lead",
			Email:       "igor.viana@mock.com",
			Phone:       "(61) 91111-1009",
			Location:    "Brasília, DF",
			Bio:         "15 anos de XP. Lidero times técnicos. Busco implementar cultura de AI-First no desenvolvimento de software.",
			Products:    []string{"Formação", "Mentoria"},
			Areas:       []string{"Produto", "Backoffice"},
			Seniority:   SenioritySenior,
			FixedSalary: "R$ 18.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=igor",
			Tags:        []string{"Liderança", "Arquitetura", "Cloud", "Mentoria"},
		},
		{
			Name:        "Julia Pereira",
			Role:        "Growth Hacker",
			Email:       "ju.pereira@mock.com",
			Phone:       "(71) 90000-1010",
			Location:    "Salvador, BA",
			Bio:         "Testar rápido, aprender rápido. Especialista em SEO e Viral Loops. Hacker de funil.",
			Products:    []string{"80/20"},
			Areas:       []string{"Marketing", "Performance"},
			Seniority:   SeniorityPleno,
			FixedSalary: "R$ 9.000,00",
			Avatar:      "https://i.pravatar.cc/150?u=julia",
			Tags:        []string{"SEO", "Growth", "Analytics", "Experimentação"},
		},
	}
}
