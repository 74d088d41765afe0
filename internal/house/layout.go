package house

// Layout describes a room graph. Links are undirected.
type Layout struct {
	Entry string
	Rooms []string
	Links [][2]string
}

// DefaultLayout is the 13-room house every hunt takes place in. The van is
// the entry room; hunters start there and the ghost is never placed in it.
func DefaultLayout() Layout {
	return Layout{
		Entry: "Van",
		Rooms: []string{
			"Van",
			"Hallway",
			"Master Bedroom",
			"Boy's Bedroom",
			"Bathroom",
			"Basement",
			"Basement Hallway",
			"Right Storage Room",
			"Left Storage Room",
			"Kitchen",
			"Living Room",
			"Garage",
			"Utility Room",
		},
		Links: [][2]string{
			{"Van", "Hallway"},
			{"Hallway", "Master Bedroom"},
			{"Hallway", "Boy's Bedroom"},
			{"Hallway", "Bathroom"},
			{"Hallway", "Kitchen"},
			{"Hallway", "Basement"},
			{"Basement", "Basement Hallway"},
			{"Basement Hallway", "Right Storage Room"},
			{"Basement Hallway", "Left Storage Room"},
			{"Kitchen", "Living Room"},
			{"Kitchen", "Garage"},
			{"Garage", "Utility Room"},
		},
	}
}
