/*
 * @Date: 2025-06-15 11:02:19
 * @Description: 传统WHOIS权威服务器静态表
 */
package registry

// tldWhoisServers TLD到传统WHOIS服务器的映射
// 进程级只读数据，启动时构建一次，不加锁
var tldWhoisServers = map[string]string{
	// ==================== 传统通用顶级域名 ====================
	"com":    "whois.verisign-grs.com",
	"net":    "whois.verisign-grs.com",
	"org":    "whois.pir.org",
	"info":   "whois.afilias.net",
	"biz":    "whois.biz",
	"name":   "whois.nic.name",
	"pro":    "whois.afilias.net",
	"mobi":   "whois.afilias.net",
	"asia":   "whois.nic.asia",
	"tel":    "whois.nic.tel",
	"jobs":   "whois.nic.jobs",
	"travel": "whois.nic.travel",
	"xxx":    "whois.nic.xxx",
	"cat":    "whois.nic.cat",
	"coop":   "whois.nic.coop",
	"aero":   "whois.aero",
	"museum": "whois.nic.museum",
	"post":   "whois.dotpostregistry.net",

	// ==================== 热门新通用顶级域名 ====================
	// 科技/互联网类
	"xyz":      "whois.nic.xyz",
	"top":      "whois.nic.top",
	"site":     "whois.nic.site",
	"online":   "whois.nic.online",
	"tech":     "whois.nic.tech",
	"cloud":    "whois.nic.cloud",
	"host":     "whois.nic.host",
	"website":  "whois.nic.website",
	"space":    "whois.nic.space",
	"link":     "whois.uniregistry.net",
	"click":    "whois.uniregistry.net",
	"digital":  "whois.nic.digital",
	"network":  "whois.nic.network",
	"systems":  "whois.nic.systems",
	"software": "whois.nic.software",
	"computer": "whois.nic.computer",
	"codes":    "whois.nic.codes",
	"domains":  "whois.nic.domains",
	"hosting":  "whois.nic.hosting",
	"data":     "whois.nic.data",

	// 商业/企业类
	"shop":          "whois.nic.shop",
	"store":         "whois.nic.store",
	"club":          "whois.nic.club",
	"vip":           "whois.nic.vip",
	"win":           "whois.nic.win",
	"wang":          "whois.gtld.knet.cn",
	"work":          "whois.nic.work",
	"company":       "whois.nic.company",
	"business":      "whois.nic.business",
	"agency":        "whois.nic.agency",
	"group":         "whois.nic.group",
	"center":        "whois.nic.center",
	"solutions":     "whois.nic.solutions",
	"services":      "whois.nic.services",
	"consulting":    "whois.nic.consulting",
	"management":    "whois.nic.management",
	"partners":      "whois.nic.partners",
	"ventures":      "whois.nic.ventures",
	"capital":       "whois.nic.capital",
	"holdings":      "whois.nic.holdings",
	"global":        "whois.nic.global",
	"international": "whois.nic.international",
	"limited":       "whois.nic.limited",
	"ltd":           "whois.nic.ltd",
	"inc":           "whois.nic.inc",
	"gmbh":          "whois.nic.gmbh",
	"llc":           "whois.nic.llc",
	"sarl":          "whois.nic.sarl",

	// 金融类
	"finance":     "whois.nic.finance",
	"financial":   "whois.nic.financial",
	"money":       "whois.nic.money",
	"fund":        "whois.nic.fund",
	"investments": "whois.nic.investments",
	"exchange":    "whois.nic.exchange",
	"market":      "whois.nic.market",
	"trading":     "whois.nic.trading",
	"cash":        "whois.nic.cash",
	"bank":        "whois.nic.bank",
	"insurance":   "whois.nic.insurance",
	"credit":      "whois.nic.credit",
	"loan":        "whois.nic.loan",
	"loans":       "whois.nic.loans",
	"tax":         "whois.nic.tax",

	// 内容/媒体类
	"blog":      "whois.nic.blog",
	"news":      "whois.nic.news",
	"media":     "whois.nic.media",
	"live":      "whois.nic.live",
	"video":     "whois.nic.video",
	"tv":        "whois.nic.tv",
	"fm":        "whois.nic.fm",
	"photos":    "whois.nic.photos",
	"pictures":  "whois.nic.pictures",
	"gallery":   "whois.nic.gallery",
	"graphics":  "whois.nic.graphics",
	"design":    "whois.nic.design",
	"art":       "whois.nic.art",
	"studio":    "whois.nic.studio",
	"music":     "whois.nic.music",
	"audio":     "whois.nic.audio",
	"games":     "whois.nic.games",
	"game":      "whois.nic.game",
	"play":      "whois.nic.play",
	"chat":      "whois.nic.chat",
	"social":    "whois.nic.social",
	"community": "whois.nic.community",
	"fans":      "whois.nic.fans",
	"fun":       "whois.nic.fun",
	"lol":       "whois.nic.lol",

	// 生活/服务类
	"life":     "whois.nic.life",
	"world":    "whois.nic.world",
	"today":    "whois.nic.today",
	"city":     "whois.nic.city",
	"zone":     "whois.nic.zone",
	"place":    "whois.nic.place",
	"email":    "whois.nic.email",
	"support":  "whois.nic.support",
	"help":     "whois.nic.help",
	"guide":    "whois.nic.guide",
	"tips":     "whois.nic.tips",
	"wiki":     "whois.nic.wiki",
	"plus":     "whois.nic.plus",
	"express":  "whois.nic.express",
	"direct":   "whois.nic.direct",
	"delivery": "whois.nic.delivery",

	// 教育/专业类
	"academy":    "whois.nic.academy",
	"education":  "whois.nic.education",
	"school":     "whois.nic.school",
	"college":    "whois.nic.college",
	"university": "whois.nic.university",
	"institute":  "whois.nic.institute",
	"training":   "whois.nic.training",
	"courses":    "whois.nic.courses",
	"legal":      "whois.nic.legal",
	"lawyer":     "whois.nic.lawyer",
	"attorney":   "whois.nic.attorney",
	"law":        "whois.nic.law",
	"doctor":     "whois.nic.doctor",
	"dentist":    "whois.nic.dentist",
	"clinic":     "whois.nic.clinic",
	"healthcare": "whois.nic.healthcare",
	"hospital":   "whois.nic.hospital",
	"pharmacy":   "whois.nic.pharmacy",
	"fitness":    "whois.nic.fitness",
	"yoga":       "whois.nic.yoga",

	// 房产/地产类
	"property":   "whois.nic.property",
	"properties": "whois.nic.properties",
	"realty":     "whois.nic.realty",
	"estate":     "whois.nic.estate",
	"land":       "whois.nic.land",
	"house":      "whois.nic.house",
	"homes":      "whois.nic.homes",
	"apartments": "whois.nic.apartments",

	// 餐饮/食品类
	"restaurant": "whois.nic.restaurant",
	"bar":        "whois.nic.bar",
	"pub":        "whois.nic.pub",
	"cafe":       "whois.nic.cafe",
	"coffee":     "whois.nic.coffee",
	"pizza":      "whois.nic.pizza",
	"beer":       "whois.nic.beer",
	"wine":       "whois.nic.wine",
	"kitchen":    "whois.nic.kitchen",
	"recipes":    "whois.nic.recipes",

	// 旅游/活动类
	"flights":  "whois.nic.flights",
	"holiday":  "whois.nic.holiday",
	"vacation": "whois.nic.vacation",
	"cruises":  "whois.nic.cruises",
	"tours":    "whois.nic.tours",
	"wedding":  "whois.nic.wedding",
	"party":    "whois.nic.party",
	"events":   "whois.nic.events",
	"tickets":  "whois.nic.tickets",
	"dating":   "whois.nic.dating",

	// 购物/促销类
	"sale":     "whois.nic.sale",
	"deals":    "whois.nic.deals",
	"discount": "whois.nic.discount",
	"coupons":  "whois.nic.coupons",
	"bargains": "whois.nic.bargains",
	"cheap":    "whois.nic.cheap",
	"best":     "whois.nic.best",
	"bid":      "whois.nic.bid",
	"auction":  "whois.nic.auction",

	// ==================== 特殊国家/地区域名（常用于简短域名） ====================
	"io": "whois.nic.io",
	"co": "whois.nic.co",
	"me": "whois.nic.me",
	"cc": "ccwhois.verisign-grs.com",
	"ws": "whois.website.ws",
	"la": "whois.nic.la",
	"in": "whois.inregistry.net",
	"pw": "whois.nic.pw",
	"ai": "whois.nic.ai",
	"gg": "whois.gg",
	"im": "whois.nic.im",
	"to": "whois.tonic.to",
	"am": "whois.amnic.net",
	"ly": "whois.nic.ly",
	"so": "whois.nic.so",
	"sh": "whois.nic.sh",
	"ac": "whois.nic.ac",
	"sx": "whois.sx",
	"nu": "whois.iis.nu",
	"gl": "whois.nic.gl",
	"is": "whois.isnic.is",
	"mu": "whois.nic.mu",
	"sc": "whois.nic.sc",
	"vc": "whois.nic.vc",
	"ag": "whois.nic.ag",
	"bz": "whois.belizenic.bz",
	"ms": "whois.nic.ms",
	"tc": "whois.nic.tc",
	"vg": "whois.nic.vg",
	"gd": "whois.nic.gd",
	"dm": "whois.nic.dm",
	"lc": "whois.nic.lc",
	"ht": "whois.nic.ht",

	// ==================== 欧洲国家域名 ====================
	"cn":       "whois.cnnic.cn",
	"uk":       "whois.nic.uk",
	"de":       "whois.denic.de",
	"eu":       "whois.eu",
	"fr":       "whois.nic.fr",
	"nl":       "whois.domain-registry.nl",
	"be":       "whois.dns.be",
	"it":       "whois.nic.it",
	"es":       "whois.nic.es",
	"pl":       "whois.dns.pl",
	"ru":       "whois.tcinet.ru",
	"ua":       "whois.ua",
	"at":       "whois.nic.at",
	"ch":       "whois.nic.ch",
	"li":       "whois.nic.li",
	"cz":       "whois.nic.cz",
	"sk":       "whois.sk-nic.sk",
	"hu":       "whois.nic.hu",
	"dk":       "whois.dk-hostmaster.dk",
	"fi":       "whois.fi",
	"se":       "whois.iis.se",
	"no":       "whois.norid.no",
	"ie":       "whois.iedr.ie",
	"pt":       "whois.dns.pt",
	"gr":       "whois.ics.forth.gr",
	"ro":       "whois.rotld.ro",
	"bg":       "whois.register.bg",
	"hr":       "whois.dns.hr",
	"rs":       "whois.rnids.rs",
	"si":       "whois.register.si",
	"lt":       "whois.domreg.lt",
	"lv":       "whois.nic.lv",
	"ee":       "whois.tld.ee",
	"by":       "whois.cctld.by",
	"md":       "whois.nic.md",
	"lu":       "whois.dns.lu",
	"mc":       "whois.nic.mc",
	"mt":       "whois.nic.mt",
	"cy":       "whois.nic.cy",
	"al":       "whois.akep.al",
	"mk":       "whois.marnet.mk",
	"ba":       "whois.nic.ba",
	"xn--p1ai": "whois.tcinet.ru", // .рф

	// ==================== 亚洲国家域名 ====================
	"jp": "whois.jprs.jp",
	"kr": "whois.kr",
	"tw": "whois.twnic.net.tw",
	"hk": "whois.hkirc.hk",
	"sg": "whois.sgnic.sg",
	"my": "whois.mynic.my",
	"id": "whois.pandi.or.id",
	"ph": "whois.dot.ph",
	"vn": "whois.vnnic.vn",
	"th": "whois.thnic.co.th",
	"ir": "whois.nic.ir",
	"pk": "whois.pknic.net.pk",
	"bd": "whois.btcl.net.bd",
	"np": "whois.mos.com.np",
	"lk": "whois.nic.lk",
	"mm": "whois.nic.mm",
	"kh": "whois.nic.kh",
	"mn": "whois.nic.mn",
	"kz": "whois.nic.kz",
	"uz": "whois.cctld.uz",
	"af": "whois.nic.af",
	"bt": "whois.nic.bt",

	// ==================== 中东国家域名 ====================
	"ae": "whois.aeda.net.ae",
	"sa": "whois.nic.net.sa",
	"il": "whois.isoc.org.il",
	"tr": "whois.nic.tr",
	"qa": "whois.registry.qa",
	"kw": "whois.nic.kw",
	"bh": "whois.nic.bh",
	"om": "whois.registry.om",
	"jo": "whois.nic.jo",
	"lb": "whois.lbdr.org.lb",
	"iq": "whois.cmc.iq",
	"ps": "whois.pnina.ps",

	// ==================== 美洲国家域名 ====================
	"ca": "whois.cira.ca",
	"mx": "whois.mx",
	"br": "whois.registro.br",
	"ar": "whois.nic.ar",
	"cl": "whois.nic.cl",
	"ve": "whois.nic.ve",
	"pe": "whois.nic.pe",
	"ec": "whois.nic.ec",
	"bo": "whois.nic.bo",
	"py": "whois.nic.py",
	"uy": "whois.nic.org.uy",
	"cr": "whois.nic.cr",
	"pa": "whois.nic.pa",
	"gt": "whois.gt",
	"hn": "whois.nic.hn",
	"sv": "whois.svnet.org.sv",
	"ni": "whois.nic.ni",
	"do": "whois.nic.do",
	"pr": "whois.nic.pr",
	"jm": "whois.nic.jm",
	"tt": "whois.nic.tt",
	"cu": "whois.nic.cu",
	"ky": "whois.nic.ky",
	"bb": "whois.nic.bb",
	"bs": "whois.nic.bs",

	// ==================== 大洋洲国家域名 ====================
	"au": "whois.auda.org.au",
	"nz": "whois.srs.net.nz",
	"fj": "whois.nic.fj",
	"pg": "whois.nic.pg",
	"vu": "whois.nic.vu",
	"sb": "whois.nic.sb",
	"ck": "whois.nic.ck",
	"pf": "whois.nic.pf",
	"nc": "whois.nic.nc",
	"wf": "whois.nic.wf",
	"as": "whois.nic.as",
	"gu": "whois.nic.gu",
	"ki": "whois.nic.ki",
	"nr": "whois.nic.nr",

	// ==================== 非洲国家域名 ====================
	"za": "whois.registry.net.za",
	"ci": "whois.nic.ci",
	"ng": "whois.nic.net.ng",
	"ke": "whois.kenic.or.ke",
	"gh": "whois.nic.gh",
	"tz": "whois.tznic.or.tz",
	"ug": "whois.co.ug",
	"ma": "whois.registre.ma",
	"eg": "whois.ripe.net",
	"tn": "whois.ati.tn",
	"dz": "whois.nic.dz",
	"sd": "whois.nic.sd",
	"et": "whois.nic.et",
	"rw": "whois.nic.rw",
	"zm": "whois.nic.zm",
	"zw": "whois.nic.zw",
	"bw": "whois.nic.bw",
	"na": "whois.na-nic.com.na",
	"mz": "whois.nic.mz",
	"ao": "whois.nic.ao",
	"cm": "whois.nic.cm",
	"sn": "whois.nic.sn",
	"ml": "whois.nic.ml",
	"bf": "whois.nic.bf",
	"ne": "whois.nic.ne",
	"cd": "whois.nic.cd",
	"cg": "whois.nic.cg",
	"ga": "whois.nic.ga",
	"gn": "whois.nic.gn",
	"re": "whois.nic.re",
	"mg": "whois.nic.mg",
	"cv": "whois.nic.cv",

	// ==================== 特殊/政府/教育域名 ====================
	"gov":  "whois.dotgov.gov",
	"edu":  "whois.educause.edu",
	"mil":  "whois.nic.mil",
	"int":  "whois.iana.org",
	"arpa": "whois.iana.org",
}

// suffixWhoisServers 二级国家域名后缀到WHOIS服务器的映射
// 查询时优先于TLD表（处理 co.uk、com.cn 这类委派注册局）
var suffixWhoisServers = map[string]string{
	"co.uk":  "whois.nic.uk",
	"org.uk": "whois.nic.uk",
	"me.uk":  "whois.nic.uk",
	"ltd.uk": "whois.nic.uk",
	"plc.uk": "whois.nic.uk",
	"com.cn": "whois.cnnic.cn",
	"net.cn": "whois.cnnic.cn",
	"org.cn": "whois.cnnic.cn",
	"gov.cn": "whois.cnnic.cn",
	"com.au": "whois.auda.org.au",
	"net.au": "whois.auda.org.au",
	"org.au": "whois.auda.org.au",
	"co.nz":  "whois.srs.net.nz",
	"net.nz": "whois.srs.net.nz",
	"org.nz": "whois.srs.net.nz",
	"co.jp":  "whois.jprs.jp",
	"ne.jp":  "whois.jprs.jp",
	"or.jp":  "whois.jprs.jp",
	"co.kr":  "whois.kr",
	"or.kr":  "whois.kr",
	"com.br": "whois.registro.br",
	"net.br": "whois.registro.br",
	"org.br": "whois.registro.br",
	"com.mx": "whois.mx",
	"org.mx": "whois.mx",
	"com.tw": "whois.twnic.net.tw",
	"org.tw": "whois.twnic.net.tw",
	"com.hk": "whois.hkirc.hk",
	"org.hk": "whois.hkirc.hk",
	"com.sg": "whois.sgnic.sg",
	"org.sg": "whois.sgnic.sg",
	"co.za":  "whois.registry.net.za",
	"org.za": "whois.registry.net.za",
	"net.za": "whois.registry.net.za",
	"com.ar": "whois.nic.ar",
	"org.ar": "whois.nic.ar",
	"in.th":  "whois.thnic.co.th",
	"co.th":  "whois.thnic.co.th",
	"com.my": "whois.mynic.my",
	"net.my": "whois.mynic.my",
	"org.my": "whois.mynic.my",
	"co.id":  "whois.pandi.or.id",
	"web.id": "whois.pandi.or.id",
	"com.ph": "whois.dot.ph",
	"org.ph": "whois.dot.ph",
	"com.vn": "whois.vnnic.vn",
	"net.vn": "whois.vnnic.vn",
}
