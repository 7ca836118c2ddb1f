package store

import "github.com/thomasrocks006-cmyk/Revoclone/internal/models"

// merchantLocations enriches records that arrive without a location.
// Minimal, focused mapping; add entries as needed.
var merchantLocations = map[string]models.Location{
	// Paris
	"Galeries Lafayette Haussmann": {Lat: 48.8738, Lon: 2.3320, Address: "40 Bd Haussmann, 75009 Paris, France"},
	"Café de Flore":                {Lat: 48.8553, Lon: 2.3347, Address: "172 Bd Saint-Germain, 75006 Paris, France"},
	"L'Ami Jean":                   {Lat: 48.8622, Lon: 2.3039, Address: "27 Rue Malar, 75007 Paris, France"},
	"Marché Franprix":              {Lat: 48.8610, Lon: 2.3522, Address: "75004 Paris, France"},
	"Pains De Provence":            {Lat: 48.8566, Lon: 2.3522, Address: "Paris, France"},

	// Nice / Antibes
	"Galeries Lafayette Nice": {Lat: 43.7005, Lon: 7.2706, Address: "6 Av. Jean Médecin, 06000 Nice, France"},
	"La Petite Maison":        {Lat: 43.6956, Lon: 7.2759, Address: "11 Rue Saint-François de Paule, 06300 Nice, France"},
	"Plage Keller":            {Lat: 43.5619, Lon: 7.1295, Address: "Plage de la Garoupe, 06160 Antibes, France"},
	"Boulangerie Veziano":     {Lat: 43.5819, Lon: 7.1226, Address: "2 Rue de la République, 06600 Antibes, France"},
	"Chez Pipo":               {Lat: 43.7028, Lon: 7.2776, Address: "13 Rue Bavastro, 06300 Nice, France"},
	"Monoprix Antibes":        {Lat: 43.5797, Lon: 7.1222, Address: "1 Bd Albert 1er, 06600 Antibes, France"},

	// Rome
	"Trattoria Luzzi":      {Lat: 41.8898, Lon: 12.4955, Address: "Via di S. Giovanni in Laterano, 88, 00184 Roma RM, Italy"},
	"CoopCulture Roma":     {Lat: 41.8902, Lon: 12.4922, Address: "Piazza del Colosseo, 1, 00184 Roma RM, Italy"},
	"Caffè Sant'Eustachio": {Lat: 41.8992, Lon: 12.4746, Address: "Piazza di S. Eustachio, 82, 00186 Roma RM, Italy"},

	// Porto Cervo
	"Zuma Porto Cervo":        {Lat: 41.1359, Lon: 9.5298, Address: "Promenade du Port, 07021 Porto Cervo SS, Italy"},
	"Crazy Pizza Porto Cervo": {Lat: 41.1364, Lon: 9.5327, Address: "Piazzetta degli Ulivi, 07021 Porto Cervo SS, Italy"},
}

// LookupMerchantLocation returns a copy of the known location for a merchant,
// or nil when the merchant is unmapped.
func LookupMerchantLocation(merchant string) *models.Location {
	loc, ok := merchantLocations[merchant]
	if !ok {
		return nil
	}
	return &loc
}
