package talents

import "math"

// QuestionCategory groups interview questions under one cultural pillar.
type QuestionCategory struct {
	Category  string
	Questions []string
}

// InterviewQuestions is the cultural-fit interview script.
var InterviewQuestions = []QuestionCategory{
	{
		Category: "PILAR 1: Inteligência e Autoconhecimento",
		Questions: []string{
			"Qual foi o último problema complexo que você resolveu? Me conta como foi.",
			"Como você costuma buscar evoluir? O que você tem feito para se conhecer melhor?",
			"Me dá um exemplo de uma verdade difícil que você precisou aceitar sobre você mesmo.",
		},
	},
	{
		Category: "PILAR 2: Impacto e Arte",
		Questions: []string{
			"Qual é a sua zona de genialidade? Aquela coisa que você faz melhor que a maioria e que te dá energia?",
			"Me conta de um projeto que você criou que você tem orgulho. Por que você tem orgulho dele?",
			"Qual legado você quer deixar? Como você quer ser lembrado?",
		},
	},
	{
		Category: "PILAR 3: Inteligência Artificial",
		Questions: []string{
			"Como você tem usado IA no seu dia a dia? Me dá exemplos práticos.",
			"Se você pudesse usar IA para resolver um problema da sua vida hoje, qual seria e como você faria?",
		},
	},
	{
		Category: "VALORES EM AÇÃO",
		Questions: []string{
			"Como você equilibra fazer bem feito com fazer rápido?",
			"Quando você tem uma lista gigante de coisas pra fazer, como você decide o que atacar primeiro?",
			"Me conta de uma situação difícil que você enfrentou. Como você lidou?",
			"O que você faz quando algo te incomoda no trabalho?",
			"Você já discordou de uma decisão de um líder? Como você lidou?",
			"Como você reage quando recebe feedback negativo?",
			"Me dá um exemplo de uma decisão importante que você tomou sozinho no trabalho.",
			"Me conta de algo que você construiu e depois 'queimou' para fazer melhor.",
			"O que te deixa desconfortável mas empolgado ao mesmo tempo?",
		},
	},
	{
		Category: "LENDÁRIO VS MEDÍOCRE",
		Questions: []string{
			"Me dá um exemplo de quando você entregou mais do que o esperado.",
			"Qual foi a última vez que você assumiu um risco? Como foi?",
			"Como você lida com o fracasso?",
		},
	},
}

// QuestionCount returns the number of questions in the script.
func QuestionCount() int {
	total := 0
	for _, c := range InterviewQuestions {
		total += len(c.Questions)
	}
	return total
}

// ChecklistProgress returns the percentage (0-100, rounded) of questions
// marked as asked. Keys that are not script questions are ignored.
func ChecklistProgress(checked map[string]bool) int {
	total := QuestionCount()
	if total == 0 {
		return 0
	}
	done := 0
	for _, c := range InterviewQuestions {
		for _, q := range c.Questions {
			if checked[q] {
				done++
			}
		}
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}
