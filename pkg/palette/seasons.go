package palette

import "fmt"

type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// SeasonPalette is everything a seasonal forest needs to colour itself.
type SeasonPalette struct {
	Foliage    Family
	Background HSL
	// Ground is the colour of the ground line, and of the ground fill in winter.
	Ground HSL
}

var seasons = map[Season]SeasonPalette{
	Winter: {
		Foliage: Family{Name: string(Winter), Swatches: []HSL{
			New(0, 0, 100),
			New(200, 10, 90), New(210, 20, 80), New(220, 30, 70), New(230, 40, 60),
			New(240, 50, 50), New(250, 60, 40), New(260, 70, 30), New(270, 80, 20),
			New(280, 90, 10), New(290, 100, 5),
		}},
		Background: New(208, 18, 83),
		Ground:     New(0, 0, 100),
	},
	Fall: {
		Foliage: Family{Name: string(Fall), Swatches: []HSL{
			New(5, 70, 28), New(25, 70, 20), New(35, 80, 30), New(15, 60, 25),
			New(45, 90, 23), New(5, 70, 28), New(25, 70, 50), New(35, 80, 60),
			New(15, 60, 50), New(45, 90, 50), New(5, 70, 50),
		}},
		Background: New(39, 26, 73),
		Ground:     New(45, 90, 23),
	},
	Spring: {
		Foliage: Family{Name: string(Spring), Swatches: []HSL{
			New(0, 0, 100),
			New(25, 70, 30), New(35, 80, 40), New(15, 60, 35), New(45, 90, 33),
			New(5, 70, 38), New(25, 70, 60), New(35, 80, 70), New(15, 60, 60),
			New(45, 90, 60), New(5, 70, 60),
		}},
		Background: New(43, 62, 90),
		Ground:     New(45, 90, 33),
	},
	Summer: {
		Foliage: Family{Name: string(Summer), Swatches: []HSL{
			New(92, 90, 75), New(120, 60, 40), New(130, 70, 50), New(140, 80, 60),
			New(110, 50, 30), New(122, 90, 70), New(125, 65, 45), New(119, 75, 55),
			New(111, 85, 65), New(115, 55, 35), New(119, 95, 75),
		}},
		Background: New(56, 85, 91),
		Ground:     New(110, 50, 30),
	},
}

// ForSeason returns the palette of a season.
func ForSeason(s Season) (SeasonPalette, error) {
	p, ok := seasons[s]
	if !ok {
		return SeasonPalette{}, fmt.Errorf("unknown season %q", s)
	}
	return p, nil
}
