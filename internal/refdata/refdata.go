// Package refdata holds the fixed enumerations the data-entry forms are
// built from. The lists are maintained by the operations team and change
// rarely; the Fetch variants exist so callers are already wired for a
// future reference-data API.
package refdata

import "context"

var porICDs = []string{
	"ACTL Faridabad (HR)",
	"Ahmedabad ICD (AMD)",
	"Ankleshwar ICD (AKV)",
	"Bangalore ICD (WFD)",
	"Bhiwadi ICD (BWD)",
	"Coimbatore ICD (CBE)",
	"Dadri ICD (UP)",
	"Dighi ICD (MH)",
	"Durgapur ICD (DGP)",
	"Garhi Harsaru ICD (HR)",
	"Hyderabad ICD (HYD)",
	"Irugur ICD (IRUGUR)",
	"Jaipur ICD (JPR)",
	"Jattipur / Panipat ICD (HR)",
	"Jodhpur ICD (RJ)",
	"Kanpur ICD (KNP)",
	"Khodiyar ICD (KHODIYAR)",
	"KSH ICD (MH)",
	"Loni ICD (LON)",
	"Ludhiana ICD (LDH)",
	"Madurai ICD (MDU)",
	"Modinagar ICD (UP)",
	"Moradabad ICD (MBQ)",
	"Nagpur ICD (NGP)",
	"Palwal ICD (HR)",
	"Pali ICD (HR)",
	"Patli ICD (HR)",
	"Patparganj ICD (DL)",
	"Piyala ICD (HR)",
	"Sonepat ICD (HR)",
	"Tughlakabad ICD (DL)",
}

var seaports = []string{
	"Chennai Port (TN)",
	"Cochin Port (KL)",
	"Dhamra Port (OD)",
	"Ennore Port (TN)",
	"Gangavaram Port (AP)",
	"Haldia Port (WB)",
	"Hazira Port (GJ)",
	"Kakinada Port (AP)",
	"Kandla Port (GJ)",
	"Kolkata Port (WB)",
	"Krishnapatnam Port (AP)",
	"Mormugao Port (GA)",
	"Mumbai Port (MH)",
	"Mundra Port (GJ)",
	"New Mangalore Port (KA)",
	"Nhava Sheva (MH)",
	"Paradip Port (OD)",
	"Pipavav Port (GJ)",
	"Port Blair Port (AN)",
	"Tuticorin Port (TN)",
	"Visakhapatnam Port (AP)",
	"Vizhinjam International Seaport (KL)",
}

var podPorts = []string{
	"Port of Shanghai, China",
	"Port of Singapore",
	"Port of Ningbo-Zhoushan, China",
	"Port of Shenzhen, China",
	"Port of Guangzhou, China",
	"Port of Busan, South Korea",
	"Port of Hong Kong, China",
	"Port of Qingdao, China",
	"Port of Tianjin, China",
	"Port of Jebel Ali, UAE",
	"Port of Rotterdam, Netherlands",
	"Port of Antwerp, Belgium",
	"Port of Hamburg, Germany",
	"Port of Los Angeles, USA",
	"Port of Long Beach, USA",
	"Port of New York and New Jersey, USA",
	"Port of Tanjung Pelepas, Malaysia",
	"Port of Kaohsiung, Taiwan",
	"Port of Colombo, Sri Lanka",
	"Port of Felixstowe, United Kingdom",
	"Port of Valencia, Spain",
	"Port of Algeciras, Spain",
	"Port of Laem Chabang, Thailand",
	"Port of Ho Chi Minh City, Vietnam",
	"Port of Santos, Brazil",
	"Port of Manzanillo, Mexico",
	"Port of Vancouver, Canada",
	"Port of Melbourne, Australia",
	"Port of Durban, South Africa",
	"Port of Alexandria, Egypt",
}

var containerTypes = []string{
	"20ft ST",
	"40ft ST",
	"40ft H.Q",
	"45ft H.Q",
	"20ft RF",
	"40ft RF",
	"40ft H.Q-RF",
	"20-OT-In",
	"40-OT-In",
}

var shippingLines = []string{
	"Maersk",
	"MSC",
	"CMA CGM",
	"Hapag-Lloyd",
	"COSCO",
	"ONE",
	"Evergreen",
	"HMM",
	"Unifeeder",
	"TS Lines",
	"ZIM",
	"Yang Ming",
	"Wan Hai",
	"PIL",
	"Goodrich Maritime",
	"WINWIN Lines",
	"SeaLead Shipping",
	"X-Press Feeders",
	"SITC Container",
	"Sinokor Merchant",
	"Emirates Shipping",
	"IRISL",
	"Bahri",
	"Arkas Line",
	"Antong Holdings",
	"SM Line",
	"Sealand",
	"Gold Star Line",
	"Samudera Shipping",
	"Balaji Shipping",
	"Shreyas",
	"Transworld Group",
	"SCI",
	"Sarjak Container Lines",
}

// CurrencySymbols maps the symbols offered in the cost selectors to their
// ISO codes, for display only. No conversion happens anywhere.
var CurrencySymbols = map[string]string{
	"₹": "INR",
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
}

// POROptions returns places of receipt: inland container depots followed
// by seaports.
func POROptions() []string {
	out := make([]string, 0, len(porICDs)+len(seaports))
	out = append(out, porICDs...)
	out = append(out, seaports...)
	return out
}

// POLOptions returns the ports of loading.
func POLOptions() []string {
	return append([]string(nil), seaports...)
}

// PODOptions returns the ports of discharge offered on rail-freight
// records.
func PODOptions() []string {
	return append([]string(nil), podPorts...)
}

// ContainerTypeOptions returns the container size/class enumeration.
func ContainerTypeOptions() []string {
	return append([]string(nil), containerTypes...)
}

// ShippingLineOptions returns the carrier enumeration.
func ShippingLineOptions() []string {
	return append([]string(nil), shippingLines...)
}

// FetchPOROptions is the context-aware accessor; it serves the static
// list today.
func FetchPOROptions(_ context.Context) ([]string, error) {
	return POROptions(), nil
}

func FetchPOLOptions(_ context.Context) ([]string, error) {
	return POLOptions(), nil
}

func FetchPODOptions(_ context.Context) ([]string, error) {
	return PODOptions(), nil
}

func FetchContainerTypeOptions(_ context.Context) ([]string, error) {
	return ContainerTypeOptions(), nil
}

func FetchShippingLineOptions(_ context.Context) ([]string, error) {
	return ShippingLineOptions(), nil
}
