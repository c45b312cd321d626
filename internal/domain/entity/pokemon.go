package entity

// Pokemon is the subset of a PokeAPI pokemon resource the console shows
type Pokemon struct {
	Name      string   `json:"name"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Abilities []string `json:"abilities"`
	Moves     []string `json:"moves"`
}
