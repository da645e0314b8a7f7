// Package faq implements the educational chatbot: a fixed list of topics with
// canned answers and a keyword lookup over them.
package faq

// Entry is one FAQ topic and its explanatory paragraph
type Entry struct {
	Topic  string `json:"topic"`
	Answer string `json:"answer"`
}

// Fallback is returned when no topic matches the question
const Fallback = "Je te donne une grille simple : horizon, besoin de liquidité, tolérance au risque. Pour un cas précis, ce composant pourra plus tard être relié à une API d’IA afin de générer une réponse adaptée."

// Entries lists the topics in the order they are matched and displayed.
var Entries = []Entry{
	{
		Topic:  "Livret vs ETF long terme",
		Answer: `Un livret rémunère faiblement mais reste liquide et sans risque de capital (hors inflation). Un ETF actions est exposé aux marchés : plus volatil, mais historiquement mieux rémunéré sur un horizon de 8–15 ans. La question clé n'est pas "quel produit est meilleur", mais "pour quel horizon, quel besoin et quel niveau de risque".`,
	},
	{
		Topic:  "Comment aborder le risque",
		Answer: `On distingue le risque de marché (variations), le risque de liquidité (pouvoir vendre facilement) et le risque de contrepartie. Pour un étudiant, le risque principal est souvent de s'exposer à un produit qu’il ne comprend pas, avec un horizon trop court.`,
	},
	{
		Topic:  "Place de la crypto",
		Answer: `Dans une approche pédagogique, la crypto est traitée comme un labo de volatilité, pas comme un raccourci vers la richesse. Une poche limitée, jamais au cœur du patrimoine, et jamais sur de l'argent dont on a besoin à court terme.`,
	},
	{
		Topic:  "Horizon de placement",
		Answer: `Plus l'horizon est long, plus il est probable que la volatilité de court terme s'efface. En dessous de 3–5 ans, il est délicat de s'exposer fortement aux actions. Au-delà de 8–10 ans, un portefeuille diversifié peut absorber davantage de variations.`,
	},
	{
		Topic:  "ETF monde, définition",
		Answer: `Un ETF Monde est un fonds indiciel coté qui réplique un indice d'actions internationales. C'est un outil simple pour s'exposer à plusieurs centaines d'entreprises en une seule ligne, sans devoir sélectionner des titres individuellement.`,
	},
}
