package i18n

// nationalities is the nationality picker; values are ISO 3166-1 alpha-3 codes.
var nationalities = []Option{
	{Label: "None", Value: "NONE"},
	{Label: "Afghanistan", Value: "AFG"},
	{Label: "Albania", Value: "ALB"},
	{Label: "Algeria", Value: "DZA"},
	{Label: "Andorra", Value: "AND"},
	{Label: "Angola", Value: "AGO"},
	{Label: "Antigua and Barbuda", Value: "ATG"},
	{Label: "Argentina", Value: "ARG"},
	{Label: "Armenia", Value: "ARM"},
	{Label: "Australia", Value: "AUS"},
	{Label: "Austria", Value: "AUT"},
	{Label: "Azerbaijan", Value: "AZE"},
	{Label: "Bahamas", Value: "BHS"},
	{Label: "Bahrain", Value: "BHR"},
	{Label: "Bangladesh", Value: "BGD"},
	{Label: "Barbados", Value: "BRB"},
	{Label: "Belarus", Value: "BLR"},
	{Label: "Belgium", Value: "BEL"},
	{Label: "Belize", Value: "BLZ"},
	{Label: "Benin", Value: "BEN"},
	{Label: "Bhutan", Value: "BTN"},
	{Label: "Bolivia", Value: "BOL"},
	{Label: "Bosnia and Herzegovina", Value: "BIH"},
	{Label: "Botswana", Value: "BWA"},
	{Label: "Brazil", Value: "BRA"},
	{Label: "Brunei", Value: "BRN"},
	{Label: "Bulgaria", Value: "BGR"},
	{Label: "Burkina Faso", Value: "BFA"},
	{Label: "Burundi", Value: "BDI"},
	{Label: "Cabo Verde", Value: "CPV"},
	{Label: "Cambodia", Value: "KHM"},
	{Label: "Cameroon", Value: "CMR"},
	{Label: "Canada", Value: "CAN"},
	{Label: "Central African Republic", Value: "CAF"},
	{Label: "Chad", Value: "TCD"},
	{Label: "Chile", Value: "CHL"},
	{Label: "China", Value: "CHN"},
	{Label: "Colombia", Value: "COL"},
	{Label: "Comoros", Value: "COM"},
	{Label: "Congo (Congo-Brazzaville)", Value: "COG"},
	{Label: "Costa Rica", Value: "CRI"},
	{Label: "Croatia", Value: "HRV"},
	{Label: "Cuba", Value: "CUB"},
	{Label: "Cyprus", Value: "CYP"},
	{Label: "Czechia (Czech Republic)", Value: "CZE"},
	{Label: "Denmark", Value: "DNK"},
	{Label: "Djibouti", Value: "DJI"},
	{Label: "Dominica", Value: "DMA"},
	{Label: "Dominican Republic", Value: "DOM"},
	{Label: "Ecuador", Value: "ECU"},
	{Label: "Egypt", Value: "EGY"},
	{Label: "El Salvador", Value: "SLV"},
	{Label: "Equatorial Guinea", Value: "GNQ"},
	{Label: "Eritrea", Value: "ERI"},
	{Label: "Estonia", Value: "EST"},
	{Label: "Ethiopia", Value: "ETH"},
	{Label: "Fiji", Value: "FJI"},
	{Label: "Finland", Value: "FIN"},
	{Label: "France", Value: "FRA"},
	{Label: "Gabon", Value: "GAB"},
	{Label: "Gambia", Value: "GMB"},
	{Label: "Georgia", Value: "GEO"},
	{Label: "Germany", Value: "DEU"},
	{Label: "Ghana", Value: "GHA"},
	{Label: "Greece", Value: "GRC"},
	{Label: "Grenada", Value: "GRD"},
	{Label: "Guatemala", Value: "GTM"},
	{Label: "Guinea", Value: "GIN"},
	{Label: "Guinea-Bissau", Value: "GNB"},
	{Label: "Guyana", Value: "GUY"},
	{Label: "Haiti", Value: "HTI"},
	{Label: "Holy See", Value: "VAT"},
	{Label: "Honduras", Value: "HND"},
	{Label: "Hungary", Value: "HUN"},
	{Label: "Iceland", Value: "ISL"},
	{Label: "India", Value: "IND"},
	{Label: "Indonesia", Value: "IDN"},
	{Label: "Iran", Value: "IRN"},
	{Label: "Iraq", Value: "IRQ"},
	{Label: "Ireland", Value: "IRL"},
	{Label: "Israel", Value: "ISR"},
	{Label: "Italy", Value: "ITA"},
	{Label: "Jamaica", Value: "JAM"},
	{Label: "Japan", Value: "JPN"},
	{Label: "Jordan", Value: "JOR"},
	{Label: "Kazakhstan", Value: "KAZ"},
	{Label: "Kenya", Value: "KEN"},
	{Label: "Kiribati", Value: "KIR"},
	{Label: "Kuwait", Value: "KWT"},
	{Label: "Kyrgyzstan", Value: "KGZ"},
	{Label: "Laos", Value: "LAO"},
	{Label: "Latvia", Value: "LVA"},
	{Label: "Lebanon", Value: "LBN"},
	{Label: "Lesotho", Value: "LSO"},
	{Label: "Liberia", Value: "LBR"},
	{Label: "Libya", Value: "LBY"},
	{Label: "Liechtenstein", Value: "LIE"},
	{Label: "Lithuania", Value: "LTU"},
	{Label: "Luxembourg", Value: "LUX"},
	{Label: "Madagascar", Value: "MDG"},
	{Label: "Malawi", Value: "MWI"},
	{Label: "Malaysia", Value: "MYS"},
	{Label: "Maldives", Value: "MDV"},
	{Label: "Mali", Value: "MLI"},
	{Label: "Malta", Value: "MLT"},
	{Label: "Marshall Islands", Value: "MHL"},
	{Label: "Mauritania", Value: "MRT"},
	{Label: "Mauritius", Value: "MUS"},
	{Label: "Mexico", Value: "MEX"},
	{Label: "Micronesia", Value: "FSM"},
	{Label: "Moldova", Value: "MDA"},
	{Label: "Monaco", Value: "MCO"},
	{Label: "Mongolia", Value: "MNG"},
	{Label: "Montenegro", Value: "MNE"},
	{Label: "Morocco", Value: "MAR"},
	{Label: "Mozambique", Value: "MOZ"},
	{Label: "Myanmar (Burma)", Value: "MMR"},
	{Label: "Namibia", Value: "NAM"},
	{Label: "Nauru", Value: "NRU"},
	{Label: "Nepal", Value: "NPL"},
	{Label: "Netherlands", Value: "NLD"},
	{Label: "New Zealand", Value: "NZL"},
	{Label: "Nicaragua", Value: "NIC"},
	{Label: "Niger", Value: "NER"},
	{Label: "Nigeria", Value: "NGA"},
	{Label: "North Korea", Value: "PRK"},
	{Label: "North Macedonia", Value: "MKD"},
	{Label: "Norway", Value: "NOR"},
	{Label: "Oman", Value: "OMN"},
	{Label: "Pakistan", Value: "PAK"},
	{Label: "Palau", Value: "PLW"},
	{Label: "Palestine State", Value: "PSE"},
	{Label: "Panama", Value: "PAN"},
	{Label: "Papua New Guinea", Value: "PNG"},
	{Label: "Paraguay", Value: "PRY"},
	{Label: "Peru", Value: "PER"},
	{Label: "Philippines", Value: "PHL"},
	{Label: "Poland", Value: "POL"},
	{Label: "Portugal", Value: "PRT"},
	{Label: "Qatar", Value: "QAT"},
	{Label: "Romania", Value: "ROU"},
	{Label: "Russia", Value: "RUS"},
	{Label: "Rwanda", Value: "RWA"},
	{Label: "Saint Kitts and Nevis", Value: "KNA"},
	{Label: "Saint Lucia", Value: "LCA"},
	{Label: "Saint Vincent and the Grenadines", Value: "VCT"},
	{Label: "Samoa", Value: "WSM"},
	{Label: "San Marino", Value: "SMR"},
	{Label: "Sao Tome and Principe", Value: "STP"},
	{Label: "Saudi Arabia", Value: "SAU"},
	{Label: "Senegal", Value: "SEN"},
	{Label: "Serbia", Value: "SRB"},
	{Label: "Seychelles", Value: "SYC"},
	{Label: "Sierra Leone", Value: "SLE"},
	{Label: "Singapore", Value: "SGP"},
	{Label: "Slovakia", Value: "SVK"},
	{Label: "Slovenia", Value: "SVN"},
	{Label: "Solomon Islands", Value: "SLB"},
	{Label: "Somalia", Value: "SOM"},
	{Label: "South Africa", Value: "ZAF"},
	{Label: "South Korea", Value: "KOR"},
	{Label: "South Sudan", Value: "SSD"},
	{Label: "Spain", Value: "ESP"},
	{Label: "Sri Lanka", Value: "LKA"},
	{Label: "Sudan", Value: "SDN"},
	{Label: "Suriname", Value: "SUR"},
	{Label: "Sweden", Value: "SWE"},
	{Label: "Switzerland", Value: "CHE"},
	{Label: "Syria", Value: "SYR"},
	{Label: "Tajikistan", Value: "TJK"},
	{Label: "Tanzania", Value: "TZA"},
	{Label: "Thailand", Value: "THA"},
	{Label: "Timor-Leste", Value: "TLS"},
	{Label: "Togo", Value: "TGO"},
	{Label: "Tonga", Value: "TON"},
	{Label: "Trinidad and Tobago", Value: "TTO"},
	{Label: "Tunisia", Value: "TUN"},
	{Label: "Turkey", Value: "TUR"},
	{Label: "Turkmenistan", Value: "TKM"},
	{Label: "Tuvalu", Value: "TUV"},
	{Label: "Uganda", Value: "UGA"},
	{Label: "Ukraine", Value: "UKR"},
	{Label: "United Arab Emirates", Value: "ARE"},
	{Label: "United Kingdom", Value: "GBR"},
	{Label: "United States of America", Value: "USA"},
	{Label: "Uruguay", Value: "URY"},
	{Label: "Uzbekistan", Value: "UZB"},
	{Label: "Vanuatu", Value: "VUT"},
	{Label: "Venezuela", Value: "VEN"},
	{Label: "Vietnam", Value: "VNM"},
	{Label: "Yemen", Value: "YEM"},
	{Label: "Zambia", Value: "ZMB"},
	{Label: "Zimbabwe", Value: "ZWE"},
}

var insuranceProviders = []Option{
	{Label: "None", Value: "NONE"},
	{Label: "NAS", Value: "NAS"},
	{Label: "METLIFE", Value: "METLIFE"},
	{Label: "NEXTCARE", Value: "NEXTCARE"},
	{Label: "GLOBEMED", Value: "GLOBEMED"},
	{Label: "ADNIC", Value: "ADNIC"},
	{Label: "OPEN JET", Value: "OPEN_JET"},
	{Label: "DAMAN", Value: "DAMAN"},
	{Label: "THIQA", Value: "THIQA"},
	{Label: "AL KHAZNA", Value: "AL_KHAZNA"},
	{Label: "AXA", Value: "AXA"},
	{Label: "NEURON", Value: "NEURON"},
	{Label: "MEDNET", Value: "MEDNET"},
	{Label: "SUKOON", Value: "SUKOON"},
	{Label: "Wealth International", Value: "Wealth_International"},
	{Label: "Pentacare", Value: "Pentacare"},
	{Label: "AL Madallah", Value: "AL_Madallah"},
	{Label: "FMC - Metlife", Value: "FMC_METLIFE"},
	{Label: "Max Care", Value: "Max_Care"},
	{Label: "Afiya TPA", Value: "Afiya_TPA"},
	{Label: "NGI Healthnet", Value: "NGI_Healthnet"},
	{Label: "IRIS", Value: "IRIS"},
	{Label: "MSH", Value: "MSH"},
}
