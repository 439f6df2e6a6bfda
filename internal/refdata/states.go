// Package refdata holds the read-only reference tables bundled with the
// application: the state/LGA lookup used by selection fields and filters,
// and the seed listings and publisher applications loaded at session start.
package refdata

// State is an administrative region with its ordered list of Local
// Government Areas.
type State struct {
	Name string
	LGAs []string
}

// states covers the regions the marketplace currently operates in. The
// LGA lists are ordered as they should appear in selection fields.
var states = []State{
	{
		Name: "Lagos",
		LGAs: []string{
			"Agege", "Ajeromi-Ifelodun", "Alimosho", "Amuwo-Odofin", "Apapa",
			"Badagry", "Epe", "Eti-Osa", "Ibeju-Lekki", "Ifako-Ijaiye",
			"Ikeja", "Ikorodu", "Kosofe", "Lagos Island", "Lagos Mainland",
			"Mushin", "Ojo", "Oshodi-Isolo", "Shomolu", "Surulere",
		},
	},
	{
		Name: "Abuja (FCT)",
		LGAs: []string{
			"Abaji", "Abuja Municipal", "Bwari", "Gwagwalada", "Kuje", "Kwali",
		},
	},
	{
		Name: "Rivers",
		LGAs: []string{
			"Bonny", "Degema", "Eleme", "Ikwerre", "Obio-Akpor", "Okrika",
			"Oyigbo", "Port Harcourt",
		},
	},
	{
		Name: "Oyo",
		LGAs: []string{
			"Akinyele", "Egbeda", "Ibadan North", "Ibadan North-East",
			"Ibadan North-West", "Ibadan South-East", "Ibadan South-West",
			"Ido", "Ogbomosho North", "Oluyole",
		},
	},
	{
		Name: "Kano",
		LGAs: []string{
			"Dala", "Fagge", "Gwale", "Kano Municipal", "Kumbotso",
			"Nassarawa", "Tarauni", "Ungogo",
		},
	},
	{
		Name: "Enugu",
		LGAs: []string{
			"Enugu East", "Enugu North", "Enugu South", "Igbo-Eze North",
			"Nkanu West", "Nsukka", "Udi",
		},
	},
	{
		Name: "Anambra",
		LGAs: []string{
			"Awka North", "Awka South", "Idemili North", "Nnewi North",
			"Ogbaru", "Onitsha North", "Onitsha South",
		},
	},
	{
		Name: "Ogun",
		LGAs: []string{
			"Abeokuta North", "Abeokuta South", "Ado-Odo/Ota", "Ijebu Ode",
			"Obafemi Owode", "Sagamu",
		},
	},
	{
		Name: "Kaduna",
		LGAs: []string{
			"Chikun", "Igabi", "Kaduna North", "Kaduna South", "Sabon Gari",
			"Zaria",
		},
	},
	{
		Name: "Delta",
		LGAs: []string{
			"Oshimili South", "Sapele", "Udu", "Ughelli North", "Uvwie",
			"Warri North", "Warri South",
		},
	},
	{
		Name: "Edo",
		LGAs: []string{
			"Egor", "Esan West", "Ikpoba-Okha", "Oredo", "Ovia North-East",
		},
	},
	{
		Name: "Akwa Ibom",
		LGAs: []string{
			"Eket", "Ibeno", "Ikot Ekpene", "Oron", "Uyo",
		},
	},
}

// States returns the supported states in display order. Callers must not
// mutate the returned slice.
func States() []State {
	return states
}

// StateNames returns just the state names, in the same order as States.
func StateNames() []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.Name
	}
	return names
}

// LGAs returns the ordered LGA list for a state, or nil when the state is
// unknown. An empty state name yields nil, which selection fields treat as
// "choose a state first".
func LGAs(state string) []string {
	for _, s := range states {
		if s.Name == state {
			return s.LGAs
		}
	}
	return nil
}

// IsValidLGA reports whether lga belongs to state.
func IsValidLGA(state, lga string) bool {
	for _, candidate := range LGAs(state) {
		if candidate == lga {
			return true
		}
	}
	return false
}
