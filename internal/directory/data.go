package directory

import "github.com/voicethroughimage/vti/internal/content"

// resources is the verified California directory. Order matters: the first
// five entries seed the local store used in demo mode.
var resources = []content.Resource{
	{
		ID:                 "res-001",
		Name:               "Chinatown Community Development Center",
		NameZhTW:           "華人社區發展中心",
		NameZhCN:           "华人社区发展中心",
		Region:             content.RegionNorth,
		Type:               content.TypeChineseServices,
		Description:        "Affordable housing, tenant counseling and community organizing for Chinatown residents. Cantonese and Mandarin spoken.",
		DescriptionZhTW:    "為華埠居民提供可負擔住房、租客諮詢與社區組織服務，提供粵語及國語協助。",
		DescriptionZhCN:    "为华埠居民提供可负担住房、租客咨询与社区组织服务，提供粤语及普通话协助。",
		Contact:            "(415) 984-1450",
		Location:           "1525 Grant Ave, San Francisco, CA",
		OperatingHours:     "Mon-Fri 9:00 AM - 5:00 PM",
		OperatingHoursZhTW: "週一至週五 上午9:00 - 下午5:00",
		OperatingHoursZhCN: "周一至周五 上午9:00 - 下午5:00",
		Website:            "chinatowncdc.org",
	},
	{
		ID:                 "res-002",
		Name:               "Glide Memorial Church",
		NameZhTW:           "格萊德紀念教會",
		NameZhCN:           "格莱德纪念教会",
		Region:             content.RegionNorth,
		Type:               content.TypeFoodBank,
		Description:        "Free daily meals in the Tenderloin, plus harm reduction, health and family services.",
		DescriptionZhTW:    "在田德隆區每日提供免費餐點，並有減害、健康及家庭服務。",
		DescriptionZhCN:    "在田德隆区每日提供免费餐点，并有减害、健康及家庭服务。",
		Contact:            "(415) 674-6000",
		Location:           "330 Ellis St, San Francisco, CA",
		OperatingHours:     "Daily meals 8:00 AM - 1:30 PM",
		OperatingHoursZhTW: "每日供餐 上午8:00 - 下午1:30",
		OperatingHoursZhCN: "每日供餐 上午8:00 - 下午1:30",
		Website:            "glide.org",
	},
	{
		ID:                 "res-003",
		Name:               "Union Rescue Mission",
		NameZhTW:           "聯合救援會",
		NameZhCN:           "联合救援会",
		Region:             content.RegionSouth,
		Type:               content.TypeShelter,
		Description:        "Emergency shelter, meals and recovery programs for men, women and families on Skid Row.",
		DescriptionZhTW:    "在洛杉磯 Skid Row 為男性、女性及家庭提供緊急收容、餐點與康復計畫。",
		DescriptionZhCN:    "在洛杉矶 Skid Row 为男性、女性及家庭提供紧急收容、餐点与康复计划。",
		Contact:            "(213) 347-6300",
		Location:           "545 S San Pedro St, Los Angeles, CA",
		OperatingHours:     "24/7",
		OperatingHoursZhTW: "全天候",
		OperatingHoursZhCN: "全天候",
		Website:            "urm.org",
	},
	{
		ID:                 "res-004",
		Name:               "Bay Area Legal Aid",
		NameZhTW:           "灣區法律援助",
		NameZhCN:           "湾区法律援助",
		Region:             content.RegionNorth,
		Type:               content.TypeLegalAid,
		Description:        "Free civil legal help with eviction defense, public benefits and domestic violence restraining orders.",
		DescriptionZhTW:    "免費民事法律協助，包括驅逐抗辯、公共福利及家暴保護令。",
		DescriptionZhCN:    "免费民事法律协助，包括驱逐抗辩、公共福利及家暴保护令。",
		Contact:            "(800) 551-5554",
		Location:           "1735 Telegraph Ave, Oakland, CA",
		OperatingHours:     "Mon-Fri 9:30 AM - 3:00 PM",
		OperatingHoursZhTW: "週一至週五 上午9:30 - 下午3:00",
		OperatingHoursZhCN: "周一至周五 上午9:30 - 下午3:00",
		Website:            "baylegal.org",
	},
	{
		ID:                 "res-005",
		Name:               "Richmond Area Multi-Services",
		NameZhTW:           "列治文區多元服務中心",
		NameZhCN:           "列治文区多元服务中心",
		Region:             content.RegionNorth,
		Type:               content.TypeMentalHealth,
		Description:        "Culturally sensitive counseling for Asian American and immigrant communities in many languages.",
		DescriptionZhTW:    "以多種語言為亞裔及移民社群提供具文化敏感度的心理諮商。",
		DescriptionZhCN:    "以多种语言为亚裔及移民社群提供具文化敏感度的心理咨询。",
		Contact:            "(415) 800-0699",
		Location:           "4355 Geary Blvd, San Francisco, CA",
		OperatingHours:     "Mon-Fri 9:00 AM - 5:00 PM",
		OperatingHoursZhTW: "週一至週五 上午9:00 - 下午5:00",
		OperatingHoursZhCN: "周一至周五 上午9:00 - 下午5:00",
		Website:            "ramsinc.org",
	},
	{
		ID:              "res-006",
		Name:            "Self-Help for the Elderly",
		NameZhTW:        "安老自助處",
		NameZhCN:        "安老自助处",
		Region:          content.RegionNorth,
		Type:            content.TypeChineseServices,
		Description:     "Meals, case management and in-home support for Chinese-speaking seniors.",
		DescriptionZhTW: "為說中文的長者提供膳食、個案管理及居家支援。",
		DescriptionZhCN: "为说中文的长者提供膳食、个案管理及居家支援。",
		Contact:         "(415) 677-7600",
		Location:        "731 Sansome St, San Francisco, CA",
		OperatingHours:  "Mon-Fri 8:30 AM - 5:00 PM",
		Website:         "selfhelpelderly.org",
	},
	{
		ID:              "res-007",
		Name:            "Chinese Newcomers Service Center",
		NameZhTW:        "華人新移民服務中心",
		NameZhCN:        "华人新移民服务中心",
		Region:          content.RegionNorth,
		Type:            content.TypeChineseServices,
		Description:     "Job placement, ESL classes and benefits enrollment for new immigrants.",
		DescriptionZhTW: "為新移民提供就業安置、英語課程及福利申請協助。",
		DescriptionZhCN: "为新移民提供就业安置、英语课程及福利申请协助。",
		Contact:         "(415) 421-2111",
		Location:        "777 Stockton St, San Francisco, CA",
		OperatingHours:  "Mon-Fri 9:00 AM - 5:00 PM",
		Website:         "chinesenewcomers.org",
	},
	{
		ID:              "res-008",
		Name:            "Covenant House California",
		NameZhTW:        "加州聖約之家",
		NameZhCN:        "加州圣约之家",
		Region:          content.RegionSouth,
		Type:            content.TypeShelter,
		Description:     "Shelter, meals and case management for homeless youth aged 18 to 24.",
		DescriptionZhTW: "為18至24歲無家可歸青年提供收容、餐點與個案管理。",
		DescriptionZhCN: "为18至24岁无家可归青年提供收容、餐点与个案管理。",
		Contact:         "(323) 461-3131",
		Location:        "1325 N Western Ave, Los Angeles, CA",
		OperatingHours:  "24/7",
		Website:         "covca.org",
	},
	{
		ID:              "res-009",
		Name:            "Poverello House",
		NameZhTW:        "波維羅之家",
		NameZhCN:        "波维罗之家",
		Region:          content.RegionCentral,
		Type:            content.TypeShelter,
		Description:     "Meals, showers, medical clinic and emergency shelter in downtown Fresno.",
		DescriptionZhTW: "在弗雷斯諾市中心提供餐點、淋浴、診所及緊急收容。",
		DescriptionZhCN: "在弗雷斯诺市中心提供餐点、淋浴、诊所及紧急收容。",
		Contact:         "(559) 498-6988",
		Location:        "412 F St, Fresno, CA",
		OperatingHours:  "Daily 7:00 AM - 7:00 PM",
		Website:         "poverellohouse.org",
	},
	{
		ID:              "res-010",
		Name:            "Los Angeles Regional Food Bank",
		NameZhTW:        "洛杉磯地區食物銀行",
		NameZhCN:        "洛杉矶地区食物银行",
		Region:          content.RegionSouth,
		Type:            content.TypeFoodBank,
		Description:     "Groceries distributed through hundreds of partner pantries across Los Angeles County.",
		DescriptionZhTW: "透過洛杉磯郡數百個合作食物站發放雜貨。",
		DescriptionZhCN: "通过洛杉矶县数百个合作食物站发放杂货。",
		Contact:         "(323) 234-3030",
		Location:        "1734 E 41st St, Los Angeles, CA",
		OperatingHours:  "Mon-Fri 8:00 AM - 4:30 PM",
		Website:         "lafoodbank.org",
	},
	{
		ID:              "res-011",
		Name:            "Central California Food Bank",
		NameZhTW:        "中加州食物銀行",
		NameZhCN:        "中加州食物银行",
		Region:          content.RegionCentral,
		Type:            content.TypeFoodBank,
		Description:     "Mobile pantries and produce distributions throughout the Central Valley.",
		DescriptionZhTW: "在中央谷地各處設有流動食物站及蔬果發放。",
		DescriptionZhCN: "在中央谷地各处设有流动食物站及蔬果发放。",
		Contact:         "(559) 237-3663",
		Location:        "4010 E Amendola Dr, Fresno, CA",
		Website:         "ccfoodbank.org",
	},
	{
		ID:              "res-012",
		Name:            "Legal Aid Foundation of Los Angeles",
		NameZhTW:        "洛杉磯法律援助基金會",
		NameZhCN:        "洛杉矶法律援助基金会",
		Region:          content.RegionSouth,
		Type:            content.TypeLegalAid,
		Description:     "Tenant rights, immigration and family law help for low-income Angelenos.",
		DescriptionZhTW: "為低收入洛杉磯居民提供租客權益、移民及家事法協助。",
		DescriptionZhCN: "为低收入洛杉矶居民提供租客权益、移民及家事法协助。",
		Contact:         "(800) 399-4529",
		Location:        "1550 W 8th St, Los Angeles, CA",
		OperatingHours:  "Mon-Fri 9:00 AM - 5:00 PM",
		Website:         "lafla.org",
	},
	{
		ID:              "res-013",
		Name:            "Didi Hirsch Mental Health Services",
		NameZhTW:        "迪迪赫希心理健康服務",
		NameZhCN:        "迪迪赫希心理健康服务",
		Region:          content.RegionSouth,
		Type:            content.TypeMentalHealth,
		Description:     "Crisis counseling, suicide prevention and outpatient therapy.",
		DescriptionZhTW: "危機輔導、自殺防治及門診心理治療。",
		DescriptionZhCN: "危机辅导、自杀防治及门诊心理治疗。",
		Contact:         "(888) 807-7250",
		Location:        "4760 S Sepulveda Blvd, Culver City, CA",
		OperatingHours:  "24/7 crisis line",
		Website:         "didihirsch.org",
	},
	{
		ID:              "res-014",
		Name:            "Asian Women's Shelter",
		NameZhTW:        "亞裔婦女庇護所",
		NameZhCN:        "亚裔妇女庇护所",
		Region:          content.RegionNorth,
		Type:            content.TypeDomesticViolence,
		Description:     "Confidential shelter and multilingual advocacy for survivors of domestic violence.",
		DescriptionZhTW: "為家暴倖存者提供保密庇護及多語言倡導服務。",
		DescriptionZhCN: "为家暴幸存者提供保密庇护及多语言倡导服务。",
		Contact:         "(877) 751-0880",
		Location:        "San Francisco, CA (confidential)",
		OperatingHours:  "24/7 crisis line",
		Website:         "sfaws.org",
	},
	{
		ID:              "res-015",
		Name:            "Center for the Pacific Asian Family",
		NameZhTW:        "亞太家庭中心",
		NameZhCN:        "亚太家庭中心",
		Region:          content.RegionSouth,
		Type:            content.TypeDomesticViolence,
		Description:     "Emergency shelter and in-language counseling for Asian and Pacific Islander survivors.",
		DescriptionZhTW: "為亞太裔倖存者提供緊急庇護及母語輔導。",
		DescriptionZhCN: "为亚太裔幸存者提供紧急庇护及母语辅导。",
		Contact:         "(800) 339-3940",
		Location:        "Los Angeles, CA (confidential)",
		OperatingHours:  "24/7 hotline",
		Website:         "cpaf.info",
	},
	{
		ID:              "res-016",
		Name:            "National Domestic Violence Hotline",
		NameZhTW:        "全國家暴熱線",
		NameZhCN:        "全国家暴热线",
		Region:          content.RegionNational,
		Type:            content.TypeDomesticViolence,
		Description:     "Confidential support, safety planning and referrals in more than 200 languages.",
		DescriptionZhTW: "以超過200種語言提供保密支援、安全計畫及轉介。",
		DescriptionZhCN: "以超过200种语言提供保密支援、安全计划及转介。",
		Contact:         "1-800-799-7233",
		Location:        "Nationwide",
		OperatingHours:  "24/7",
		Website:         "thehotline.org",
	},
	{
		ID:              "res-017",
		Name:            "988 Suicide & Crisis Lifeline",
		NameZhTW:        "988 自殺與危機生命線",
		NameZhCN:        "988 自杀与危机生命线",
		Region:          content.RegionNational,
		Type:            content.TypeHotline,
		Description:     "Call or text 988 for free, confidential crisis support.",
		DescriptionZhTW: "撥打或傳送簡訊至988，獲得免費保密的危機支援。",
		DescriptionZhCN: "拨打或发送短信至988，获得免费保密的危机支援。",
		Contact:         "988",
		Location:        "Nationwide",
		OperatingHours:  "24/7",
		Website:         "988lifeline.org",
	},
	{
		ID:              "res-018",
		Name:            "HealthRIGHT 360",
		NameZhTW:        "HealthRIGHT 360 康復中心",
		NameZhCN:        "HealthRIGHT 360 康复中心",
		Region:          content.RegionNorth,
		Type:            content.TypeAddictionRecovery,
		Description:     "Substance use treatment, primary care and reentry services.",
		DescriptionZhTW: "提供藥物濫用治療、基層醫療及更生服務。",
		DescriptionZhCN: "提供药物滥用治疗、基层医疗及更生服务。",
		Contact:         "(415) 762-3700",
		Location:        "1563 Mission St, San Francisco, CA",
		OperatingHours:  "Mon-Fri 8:00 AM - 5:00 PM",
		Website:         "healthright360.org",
	},
}
