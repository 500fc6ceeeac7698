// Package taxonomy holds the static sector taxonomy: for each sector, the
// company-name aliases, free-text keywords, and ticker symbols used by the
// classifier and extractor. The company and symbol lists are index-aligned
// so an alias match can be mapped straight to its symbol.
//
// Sectors is an ordered slice: classification ties break toward the first
// sector in declaration order, which keeps results deterministic.
package taxonomy

// SectorProfile describes one sector's matching vocabulary.
type SectorProfile struct {
	Name      string
	Companies []string // lowercase name aliases, index-aligned with Symbols
	Keywords  []string // lowercase free-text keywords
	Symbols   []string // uppercase NSE symbols
}

// Sectors is the full sector taxonomy in fixed iteration order.
var Sectors = []SectorProfile{
	{
		Name: "Banking",
		Companies: []string{
			"hdfc bank", "icici bank", "sbi", "state bank", "axis bank", "kotak mahindra",
			"indusind bank", "federal bank", "yes bank", "idfc first bank", "rbl bank",
			"bandhan bank", "punjab national bank", "pnb", "bank of baroda", "bob",
			"canara bank", "union bank", "indian bank", "central bank", "bank of india",
			"iob", "bank of maharashtra", "jammu kashmir bank", "j&k bank", "au small finance",
			"equitas small finance", "ujjivan", "dcb bank", "karnataka bank", "city union bank",
			"south indian bank", "karur vysya bank", "tamilnad mercantile bank",
		},
		Keywords: []string{
			"bank", "banking", "loans", "deposits", "npa", "credit", "lending", "borrowing",
			"casa", "net interest margin", "nim", "advances", "asset quality", "retail banking",
			"corporate banking", "home loan", "personal loan", "car loan", "education loan",
			"branch", "atm", "digital banking", "mobile banking", "net banking",
		},
		Symbols: []string{
			"HDFCBANK", "ICICIBANK", "SBIN", "AXISBANK", "KOTAKBANK", "INDUSINDBK",
			"FEDERALBNK", "YESBANK", "IDFCFIRSTB", "RBLBANK", "BANDHANBNK",
			"PNB", "BANKBARODA", "CANBK", "UNIONBANK", "INDIANB", "CENTRALBK",
			"IOB", "MAHABANK", "JKBANK", "AUBANK", "EQUITASBNK", "UJJIVANSFB",
			"DCBBANK", "KTKBANK", "CITYUNION", "SOUTHBANK", "KARURVYSYA", "TMB",
		},
	},
	{
		Name: "Financial Services",
		Companies: []string{
			"bajaj finance", "bajaj finserv", "hdfc life", "sbi life", "icici prudential",
			"lic", "life insurance", "cholamandalam", "muthoot finance", "paisalo",
			"shriram finance", "power finance", "pfc", "rec", "iifl", "lic housing",
			"can fin homes", "pnb housing", "mahindra finance", "sbi cards", "hdfc amc",
			"cdsl", "mas financial", "aptus", "aavas", "home first", "manappuram",
		},
		Keywords: []string{
			"nbfc", "non banking", "financial services", "insurance", "life insurance",
			"general insurance", "mutual fund", "amc", "housing finance", "microfinance",
			"gold loan", "consumer finance", "vehicle finance", "asset financing",
			"depository", "share transfer", "registrar", "credit card", "fintech",
			"payment", "upi", "wallet", "lending", "leasing", "hire purchase",
		},
		Symbols: []string{
			"BAJFINANCE", "BAJAJFINSV", "HDFCLIFE", "SBILIFE", "ICICIPRULI", "LICI",
			"CHOLAFIN", "MUTHOOTFIN", "PAISALO", "SHRIRAMFIN", "PFC", "RECLTD",
			"IIFL", "LICHSGFIN", "CANFINHOME", "PNBHOUSING", "MMFIN", "SBICARD",
			"HDFCAMC", "CDSL", "MASFIN", "APTUS", "AAVAS", "HOMEFIRST", "MANAPPURAM",
		},
	},
	{
		Name: "IT",
		Companies: []string{
			"tcs", "tata consultancy", "infosys", "wipro", "hcl tech", "tech mahindra",
			"ltts", "l&t technology", "persistent", "coforge", "ltimindtree", "happiest minds",
			"tata elxsi", "kpit tech", "cyient", "zensar", "birlasoft", "mindtree",
			"mphasis", "route mobile", "sonata software", "mastek", "intellect design",
			"tanla platforms", "oracle financial", "nucleus software", "newgen software",
			"firstsource", "info edge", "just dial", "zomato", "naukri", "paytm",
		},
		Keywords: []string{
			"software", "technology", "it", "information technology", "digital", "cloud",
			"saas", "software services", "programming", "coding", "tech services",
			"digital transformation", "artificial intelligence", "ai", "machine learning",
			"data analytics", "cybersecurity", "consulting", "outsourcing", "bpo",
			"engineering services", "product development", "erp", "crm", "platform",
		},
		Symbols: []string{
			"TCS", "INFY", "WIPRO", "HCLTECH", "TECHM", "LTTS", "PERSISTENT",
			"COFORGE", "LTIM", "HAPPSTMNDS", "TATAELXSI", "KPITTECH", "CYIENT",
			"ZENSAR", "BIRLASOFT", "MPHASIS", "ROUTE", "SONATSOFTW", "MASTEK",
			"INTELLECT", "TANLA", "OFSS", "NUCLEUSS", "NEWGEN", "FSL",
			"INFOEDGE", "JUSTDIAL", "ZOMATO", "NAUKRI", "PAYTM",
		},
	},
	{
		Name: "Oil & Gas",
		Companies: []string{
			"reliance", "reliance industries", "ongc", "oil and natural gas", "bpcl",
			"bharat petroleum", "ioc", "indian oil", "hpcl", "hindustan petroleum",
			"gail", "gail india", "oil india", "petronet lng", "igl", "indraprastha gas",
			"mgl", "mahanagar gas", "gujarat gas", "gspl", "adani gas", "adani total gas",
			"aegis logistics", "mrpl", "mangalore refinery", "castrol", "gulf oil",
		},
		Keywords: []string{
			"oil", "gas", "petroleum", "refinery", "crude oil", "energy", "petrol", "diesel",
			"lng", "cng", "natural gas", "lpg", "petrochemical", "fuel", "opec", "drilling",
			"exploration", "production", "refining", "downstream", "upstream", "midstream",
			"oil prices", "brent crude", "gasoline", "aviation fuel", "atf", "pipeline",
			"city gas distribution", "oil marketing", "lubricants",
		},
		Symbols: []string{
			"RELIANCE", "ONGC", "BPCL", "IOC", "HPCL", "GAIL", "OIL", "PETRONET",
			"IGL", "MGL", "GUJGASLTD", "GSPL", "ADANIGAS", "AEGISLOG", "MRPL",
			"CASTROLIND", "GULFPETRO",
		},
	},
	{
		Name: "Pharmaceuticals",
		Companies: []string{
			"sun pharma", "sun pharmaceutical", "cipla", "dr reddy", "dr reddys",
			"divis labs", "lupin", "aurobindo pharma", "torrent pharma", "alkem",
			"biocon", "zydus", "zydus lifesciences", "glenmark", "ipca", "mankind",
			"laurus labs", "granules india", "natco pharma", "dr lal pathlabs",
			"metropolis", "thyrocare", "apollo hospitals", "max healthcare", "fortis",
			"narayana hrudayalaya", "syngene", "strides pharma", "cadila", "jubilant pharmova",
		},
		Keywords: []string{
			"pharma", "pharmaceutical", "healthcare", "drugs", "medicines", "vaccine",
			"formulations", "api", "active pharmaceutical ingredient", "generic drugs",
			"hospitals", "diagnostics", "pathology", "clinical trials", "biotech",
			"biotechnology", "medical", "therapeutic", "oncology", "cardiology",
			"diabetes", "antibiotics", "usfda", "fda approval", "patent", "molecule",
		},
		Symbols: []string{
			"SUNPHARMA", "CIPLA", "DRREDDY", "DIVISLAB", "LUPIN", "AUROPHARMA",
			"TORNTPHARM", "ALKEM", "BIOCON", "ZYDUSLIFE", "GLENMARK", "IPCALAB",
			"MANKIND", "LAURUSLABS", "GRANULES", "NATCOPHARM", "LALPATHLAB",
			"METROPOLIS", "THYROCARE", "APOLLOHOSP", "MAXHEALTH", "FORTIS",
			"NARAYANA", "SYNGENE", "STRIDES", "CADILAHC", "JUBLPHARMA",
		},
	},
	{
		Name: "Automobile",
		Companies: []string{
			"maruti", "maruti suzuki", "tata motors", "mahindra", "m&m", "mahindra and mahindra",
			"bajaj auto", "hero motocorp", "tvs motor", "eicher motors", "royal enfield",
			"ashok leyland", "escorts", "escorts kubota", "bosch", "motherson",
			"samvardhana motherson", "bharat forge", "exide", "amara raja", "mrf",
			"apollo tyres", "ceat", "balkrishna industries", "jk tyre", "uno minda",
		},
		Keywords: []string{
			"automobile", "auto", "cars", "bikes", "vehicles", "electric vehicle", "ev",
			"scooters", "motorcycles", "two wheeler", "four wheeler", "passenger vehicle",
			"commercial vehicle", "tractors", "buses", "trucks", "auto sales", "production",
			"auto components", "auto parts", "tyres", "batteries", "automotive",
			"mobility", "hybrid vehicles", "automobile exports", "dealership",
		},
		Symbols: []string{
			"MARUTI", "TATAMOTORS", "M&M", "BAJAJ-AUTO", "HEROMOTOCO", "TVSMOTOR",
			"EICHERMOT", "ASHOKLEY", "ESCORTS", "BOSCHLTD", "MOTHERSON",
			"BHARATFORG", "EXIDEIND", "AMARAJABAT", "MRF", "APOLLOTYRE", "CEATLTD",
			"BALKRISIND", "JKTYRE", "UNOMINDA",
		},
	},
	{
		Name: "Defense",
		Companies: []string{
			"bharat electronics", "bel", "hal", "hindustan aeronautics", "bharat dynamics",
			"bdl", "beml", "cochin shipyard", "garden reach shipbuilders", "grse",
			"mazagon dock", "mdl", "data patterns", "midhani", "zen technologies",
		},
		Keywords: []string{
			"defense", "defence", "military", "aerospace", "aviation", "weapons",
			"missiles", "radars", "naval", "shipyard", "electronic warfare",
			"defense electronics", "avionics", "weapons systems", "defense contracts",
			"ministry of defense", "mod", "indian army", "indian navy", "indian air force",
			"fighter jets", "helicopters", "submarines", "warships",
		},
		Symbols: []string{
			"BEL", "HAL", "BDL", "BEML", "COCHINSHIP", "GRSE", "MAZDOCK",
			"DATAPATTNS", "MIDHANI", "ZENTEC",
		},
	},
	{
		Name: "Metals & Mining",
		Companies: []string{
			"tata steel", "jsw steel", "hindalco", "vedanta", "sail", "steel authority",
			"jindal steel", "jspl", "nmdc", "coal india", "national aluminium", "nalco",
			"hindustan zinc", "hindzinc", "ratnamani", "apl apollo", "jindal saw",
			"welspun corp", "sunflag", "moil",
		},
		Keywords: []string{
			"steel", "metals", "mining", "aluminium", "aluminum", "copper", "zinc",
			"iron ore", "coal", "smelting", "alloy", "ferrous", "non-ferrous",
			"metal prices", "commodities", "steel production", "steel demand",
			"steel prices", "mining operations", "extraction", "metal exports",
			"steel plant", "blast furnace", "hot rolled", "cold rolled",
		},
		Symbols: []string{
			"TATASTEEL", "JSWSTEEL", "HINDALCO", "VEDL", "SAIL", "JSPL",
			"NMDC", "COALINDIA", "NATIONALUM", "HINDZINC", "RATNAMANI",
			"APL", "JINDALSTEL", "WELCORP", "SUNFLAG", "MOIL",
		},
	},
	{
		Name: "FMCG",
		Companies: []string{
			"hindustan unilever", "hul", "itc", "nestle", "nestle india", "britannia",
			"dabur", "godrej consumer", "marico", "colgate", "colgate palmolive",
			"emami", "tata consumer", "varun beverages", "united spirits", "mcdowell",
			"radico khaitan", "jubilant foodworks", "devyani international", "westlife",
			"bikaji", "mrs bectors", "parag milk", "heritage foods",
		},
		Keywords: []string{
			"fmcg", "fast moving consumer goods", "consumer products", "consumer goods",
			"personal care", "food products", "beverages", "toiletries", "household",
			"home care", "packaged foods", "snacks", "dairy", "biscuits", "soaps",
			"detergents", "shampoo", "skincare", "grocery", "staples", "consumption",
			"rural demand", "urban demand", "distribution", "retail", "qsr", "restaurant",
		},
		Symbols: []string{
			"HINDUNILVR", "ITC", "NESTLEIND", "BRITANNIA", "DABUR", "GODREJCP",
			"MARICO", "COLPAL", "EMAMILTD", "TATACONSUM", "VBL", "MCDOWELL-N",
			"RADICO", "JUBLFOOD", "DEVYANI", "WESTLIFE", "BIKAJI", "MRSBECTORS",
			"PARAG", "HERITAGE",
		},
	},
	{
		Name: "Real Estate",
		Companies: []string{
			"dlf", "godrej properties", "oberoi realty", "prestige estates", "brigade",
			"sobha", "phoenix mills", "lodha", "macrotech", "sunteck realty",
			"mahindra lifespace", "raymond", "indiabulls real estate",
		},
		Keywords: []string{
			"real estate", "realty", "property", "residential", "commercial property",
			"construction", "housing", "apartments", "flats", "housing sales",
			"property prices", "rera", "developers", "land", "township", "plotted",
			"villas", "office spaces", "retail spaces", "warehousing",
		},
		Symbols: []string{
			"DLF", "GODREJPROP", "OBEROIRLTY", "PRESTIGE", "BRIGADE", "SOBHA",
			"PHOENIXLTD", "LODHA", "SUNTECK", "MAHLIFE", "RAYMOND", "IBREALEST",
		},
	},
	{
		Name: "Cement",
		Companies: []string{
			"ultratech", "ultratech cement", "shree cement", "acc", "ambuja",
			"ambuja cement", "dalmia bharat", "jk cement", "ramco cements",
			"birla corporation", "india cements", "jk lakshmi", "orient cement",
		},
		Keywords: []string{
			"cement", "building materials", "construction materials", "concrete",
			"cement prices", "cement production", "cement capacity", "cement demand",
			"infrastructure spending", "housing construction", "grey cement", "white cement",
			"clinker", "fly ash", "ready mix concrete", "rmc",
		},
		Symbols: []string{
			"ULTRACEMCO", "SHREECEM", "ACC", "AMBUJACEM", "DALBHARAT",
			"JKCEMENT", "RAMCOCEM", "BIRLACORPN", "INDIACEM", "JKLAKSHMI", "ORIENTCEM",
		},
	},
	{
		Name: "Telecom",
		Companies: []string{
			"bharti airtel", "airtel", "vodafone idea", "vi", "idea", "indus towers",
			"tata communications", "route mobile", "tanla", "sterlite tech",
		},
		Keywords: []string{
			"telecom", "telecommunication", "mobile", "wireless", "broadband", "internet",
			"data", "5g", "4g", "network", "spectrum", "arpu", "subscriber", "mobile data",
			"voice", "towers", "fiber", "connectivity", "telco", "operator",
		},
		Symbols: []string{
			"BHARTIARTL", "IDEA", "INDUSTOWER", "TATACOMM", "ROUTE", "TANLA", "STLTECH",
		},
	},
	{
		Name: "Power",
		Companies: []string{
			"ntpc", "power grid", "powergrid", "adani power", "tata power",
			"jsw energy", "adani green", "torrent power", "cesc", "nhpc", "sjvn",
			"suzlon", "inox wind", "borosil renewables",
		},
		Keywords: []string{
			"power", "electricity", "energy", "renewable", "solar", "wind", "hydro",
			"thermal", "coal power", "power generation", "power distribution",
			"transmission", "green energy", "clean energy", "renewable capacity",
			"power tariff", "electricity demand", "grid", "discoms",
		},
		Symbols: []string{
			"NTPC", "POWERGRID", "ADANIPOWER", "TATAPOWER", "ADANIGREEN",
			"JSWENERGY", "TORNTPOWER", "CESC", "NHPC", "SJVN", "SUZLON", "INOXWIND",
		},
	},
	{
		Name: "Retail",
		Companies: []string{
			"dmart", "avenue supermarts", "trent", "titan", "aditya birla fashion",
			"abfrl", "shoppers stop", "v-mart", "reliance retail", "future retail",
			"spencer retail", "relaxo", "bata",
		},
		Keywords: []string{
			"retail", "shopping", "stores", "supermarket", "hypermarket", "department store",
			"fashion retail", "jewelry", "footwear", "apparel", "lifestyle", "omnichannel",
			"same store sales", "footfall", "retail expansion", "e-commerce", "online retail",
		},
		Symbols: []string{
			"DMART", "TRENT", "TITAN", "ABFRL", "SHOPERSTOP", "VMART",
			"SPENCER", "RELAXO", "BATAINDIA",
		},
	},
}

// SectorNames returns the sector names in taxonomy order.
func SectorNames() []string {
	names := make([]string, len(Sectors))
	for i, s := range Sectors {
		names[i] = s.Name
	}
	return names
}

// Find returns the profile for the named sector, or nil.
func Find(name string) *SectorProfile {
	for i := range Sectors {
		if Sectors[i].Name == name {
			return &Sectors[i]
		}
	}
	return nil
}
