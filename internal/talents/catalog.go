package talents

import "slices"

// AcademyProducts are the products a talent may declare affiliation with.
var AcademyProducts = []string{
	"80/20",
	"Mente Lendária",
	"Dominando Obsidian",
	"Comunidade",
	"Gestor IA",
	"Formação",
	"Mentoria",
}

// InterestAreas are the areas a talent may declare interest in.
var InterestAreas = []string{
	"Marketing",
	"Comercial",
	"Sucesso do Cliente",
	"Suporte Técnico",
	"Educacional",
	"Produto",
	"Performance",
	"Backoffice",
}

// SeniorityLevels in ascending order.
var SeniorityLevels = []Seniority{SeniorityJunior, SeniorityPleno, SenioritySenior}

func IsAcademyProduct(s string) bool { return slices.Contains(AcademyProducts, s) }

func IsInterestArea(s string) bool { return slices.Contains(InterestAreas, s) }

func IsSeniority(s string) bool { return slices.Contains(SeniorityLevels, Seniority(s)) }
