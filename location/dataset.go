package location

import "civic-sync"

// nigeria reference locations, in display order
var nigeria = []civic.SearchResult{
	{DisplayName: "Lagos Island, Lagos State, Nigeria", Lat: 6.4541, Lon: 3.3947, PlaceID: "lagos_island"},
	{DisplayName: "Victoria Island, Lagos State, Nigeria", Lat: 6.4281, Lon: 3.4219, PlaceID: "victoria_island"},
	{DisplayName: "Ikeja, Lagos State, Nigeria", Lat: 6.6018, Lon: 3.3515, PlaceID: "ikeja"},
	{DisplayName: "Surulere, Lagos State, Nigeria", Lat: 6.4969, Lon: 3.3612, PlaceID: "surulere"},
	{DisplayName: "Sabo, Kaduna State, Nigeria", Lat: 10.5222, Lon: 7.4383, PlaceID: "sabo_kaduna"},
	{DisplayName: "Sabo, Lagos State, Nigeria", Lat: 6.5244, Lon: 3.3792, PlaceID: "sabo_lagos"},
	{DisplayName: "Sabo, Kano State, Nigeria", Lat: 12.0022, Lon: 8.5920, PlaceID: "sabo_kano"},
	{DisplayName: "Abuja Central, FCT, Nigeria", Lat: 9.0579, Lon: 7.4951, PlaceID: "abuja_central"},
	{DisplayName: "Garki, Abuja, FCT, Nigeria", Lat: 9.0415, Lon: 7.4905, PlaceID: "garki"},
	{DisplayName: "Wuse, Abuja, FCT, Nigeria", Lat: 9.0579, Lon: 7.4951, PlaceID: "wuse"},
	{DisplayName: "Kano City, Kano State, Nigeria", Lat: 12.0022, Lon: 8.5920, PlaceID: "kano_city"},
	{DisplayName: "Port Harcourt, Rivers State, Nigeria", Lat: 4.8156, Lon: 7.0498, PlaceID: "port_harcourt"},
	{DisplayName: "Ibadan, Oyo State, Nigeria", Lat: 7.3775, Lon: 3.9470, PlaceID: "ibadan"},
	{DisplayName: "Kaduna, Kaduna State, Nigeria", Lat: 10.5222, Lon: 7.4383, PlaceID: "kaduna"},
	{DisplayName: "Benin City, Edo State, Nigeria", Lat: 6.3350, Lon: 5.6037, PlaceID: "benin_city"},
	{DisplayName: "Maiduguri, Borno State, Nigeria", Lat: 11.8311, Lon: 13.1510, PlaceID: "maiduguri"},
	{DisplayName: "Zaria, Kaduna State, Nigeria", Lat: 11.1116, Lon: 7.7240, PlaceID: "zaria"},
	{DisplayName: "Jos, Plateau State, Nigeria", Lat: 9.9285, Lon: 8.8921, PlaceID: "jos"},
	{DisplayName: "Warri, Delta State, Nigeria", Lat: 5.5160, Lon: 5.7500, PlaceID: "warri"},
	{DisplayName: "Calabar, Cross River State, Nigeria", Lat: 4.9517, Lon: 8.3220, PlaceID: "calabar"},
	{DisplayName: "Enugu, Enugu State, Nigeria", Lat: 6.4403, Lon: 7.4914, PlaceID: "enugu"},
	{DisplayName: "Owerri, Imo State, Nigeria", Lat: 5.4840, Lon: 7.0351, PlaceID: "owerri"},
	{DisplayName: "Abeokuta, Ogun State, Nigeria", Lat: 7.1475, Lon: 3.3619, PlaceID: "abeokuta"},
	{DisplayName: "Ilorin, Kwara State, Nigeria", Lat: 8.4966, Lon: 4.5426, PlaceID: "ilorin"},
	{DisplayName: "Sokoto, Sokoto State, Nigeria", Lat: 13.0059, Lon: 5.2476, PlaceID: "sokoto"},
	{DisplayName: "Minna, Niger State, Nigeria", Lat: 9.6177, Lon: 6.5569, PlaceID: "minna"},
	{DisplayName: "Bauchi, Bauchi State, Nigeria", Lat: 10.3158, Lon: 9.8442, PlaceID: "bauchi"},
	{DisplayName: "Gombe, Gombe State, Nigeria", Lat: 10.2897, Lon: 11.1711, PlaceID: "gombe"},
}

// Nigeria returns a copy of the reference dataset.
func Nigeria() []civic.SearchResult {
	return append([]civic.SearchResult(nil), nigeria...)
}
