package web

import "github.com/voicethroughimage/vti/internal/i18n"

// Slide is one page of the pitch deck.
type Slide struct {
	Kind     string
	Title    string
	Subtitle string
	Points   []string
	Image    string
}

type slideText struct {
	title, sub string
	points     []string
}

type slideDef struct {
	kind  string
	image string
	en    slideText
	zh    slideText
}

var deck = []slideDef{
	{
		kind:  "title",
		image: "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&q=80&w=2000",
		en:    slideText{title: "Voice Through Image", sub: "Documentary media for the people California forgets."},
		zh:    slideText{title: "影像之聲", sub: "為被加州遺忘的人們記錄影像。"},
	},
	{
		kind:  "problem",
		image: "https://images.unsplash.com/photo-1533035332503-455b5d19472e?auto=format&fit=crop&q=80&w=2000",
		en: slideText{title: "Compassion Fatigue", sub: "Statistics no longer move people. Faces do.", points: []string{
			"181,000 Californians experience homelessness on any given night.",
			"Coverage reduces lived experience to numbers.",
			"Audiences disengage when they cannot see the person.",
		}},
		zh: slideText{title: "同理心疲乏", sub: "數字已無法打動人心，面孔才能。", points: []string{
			"每晚約有 18.1 萬名加州人無家可歸。",
			"報導把真實經歷化約成數字。",
			"看不見人，觀眾便選擇轉身。",
		}},
	},
	{
		kind: "vision",
		en:   slideText{title: "Vision & Mission", sub: "A society that sees every person fully, and media that earns that sight with consent and care."},
		zh:   slideText{title: "願景與使命", sub: "讓社會完整地看見每一個人，並以同意與關懷取得這份看見。"},
	},
	{
		kind: "pillars",
		en: slideText{title: "Three Pillars", points: []string{
			"Documentation: trauma-informed photo, video and audio storytelling.",
			"Distribution: stories reach policymakers, funders and the public.",
			"Impact: every story links to verified services and advocacy.",
		}},
		zh: slideText{title: "三大支柱", points: []string{
			"紀錄：以創傷知情方式拍攝照片、影片與錄音。",
			"傳播：讓故事抵達決策者、資助者與大眾。",
			"影響：每個故事都連結到驗證過的服務與倡議。",
		}},
	},
	{
		kind:  "quote",
		image: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?auto=format&fit=crop&q=80&w=2000",
		en:    slideText{title: "The Human Element", sub: "\"Nobody asked me what happened. They only asked me to move.\"", points: []string{"Participant, Los Angeles"}},
		zh:    slideText{title: "人的故事", sub: "「從來沒有人問我發生了什麼，只叫我離開。」", points: []string{"受訪者，洛杉磯"}},
	},
	{
		kind: "comparison",
		en: slideText{title: "What Makes Us Different", points: []string{
			"Participants approve every frame before publication.",
			"Stories are paired with concrete resources, not just awareness.",
			"Bilingual outreach for Chinese-speaking communities.",
		}},
		zh: slideText{title: "我們的不同", points: []string{
			"每個畫面在發布前都經受訪者同意。",
			"故事搭配具體資源，而不只是喚起關注。",
			"為華語社群提供雙語服務。",
		}},
	},
	{
		kind: "ecosystem",
		en: slideText{title: "Ecosystem", sub: "Partners across shelters, clinics, legal aid and faith communities.", points: []string{
			"Referral network of 70+ verified organizations.",
			"Shared story library for partner campaigns.",
		}},
		zh: slideText{title: "合作生態", sub: "與收容所、診所、法律援助及宗教團體合作。", points: []string{
			"超過 70 個驗證機構的轉介網絡。",
			"提供合作夥伴共用的故事資料庫。",
		}},
	},
	{
		kind: "tech",
		en:   slideText{title: "Technology", sub: "AI-assisted resource search grounded in live web results, with a verified offline directory when it is unavailable."},
		zh:   slideText{title: "科技應用", sub: "以即時網路資料為基礎的 AI 資源搜尋，並在無法連線時提供驗證過的離線目錄。"},
	},
	{
		kind: "list",
		en: slideText{title: "Volunteers", sub: "Skilled people who give their time.", points: []string{
			"Photographers and videographers",
			"Translators (Mandarin, Cantonese, Spanish)",
			"Social work and legal advisors",
		}},
		zh: slideText{title: "志工", sub: "奉獻時間的專業夥伴。", points: []string{
			"攝影與錄影師",
			"翻譯（國語、粵語、西班牙語）",
			"社工與法律顧問",
		}},
	},
	{
		kind:  "quote",
		image: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&q=80&w=2000",
		en:    slideText{title: "Success Story", sub: "After her story aired, Maria was connected to transitional housing within three weeks.", points: []string{"Maria's Journey"}},
		zh:    slideText{title: "成功故事", sub: "瑪莉亞的故事播出後，三週內便獲得過渡性住房。", points: []string{"瑪莉亞的旅程"}},
	},
	{
		kind: "pie",
		en: slideText{title: "Use of Funds", sub: "Every dollar is accounted for.", points: []string{
			"85% Programs", "10% Operations", "5% Fundraising",
		}},
		zh: slideText{title: "資金運用", sub: "每一分錢都有交代。", points: []string{
			"85% 計畫執行", "10% 營運", "5% 募款",
		}},
	},
	{
		kind: "tax",
		en:   slideText{title: "501(c)(3) Status", sub: "Donations are tax-deductible to the extent allowed by law.", points: []string{"EIN 41-2510011"}},
		zh:   slideText{title: "501(c)(3) 資格", sub: "捐款可依法申報抵稅。", points: []string{"EIN 41-2510011"}},
	},
	{
		kind: "roadmap",
		en: slideText{title: "Roadmap", points: []string{
			"Q1: Launch the story library and resource directory.",
			"Q2: Bilingual documentary series in the Bay Area.",
			"Q3: Statewide partner campaign with policymakers.",
		}},
		zh: slideText{title: "發展藍圖", points: []string{
			"第一季：推出故事資料庫與資源目錄。",
			"第二季：灣區雙語紀錄片系列。",
			"第三季：與決策者合作的全州倡議。",
		}},
	},
	{
		kind:  "problem",
		image: "https://images.unsplash.com/photo-1596386461350-326ccb383e9f?auto=format&fit=crop&q=80&w=2000",
		en:    slideText{title: "Silence Is Complicity", sub: "What we refuse to see, we agree to keep."},
		zh:    slideText{title: "沉默即共謀", sub: "我們拒絕看見的，就是我們同意保留的。"},
	},
	{
		kind: "ask",
		en: slideText{title: "The Ask", sub: "$250,000 to fund our first full year.", points: []string{
			"Camera and audio equipment", "Field transportation", "Staff coordinators",
			"Editing and post-production", "Podcast production", "Participant stipends", "Partner network",
		}},
		zh: slideText{title: "我們的需求", sub: "25 萬美元支持第一個完整年度。", points: []string{
			"攝影與錄音器材", "外勤交通", "協調人員",
			"剪輯與後製", "播客製作", "受訪者津貼", "合作網絡",
		}},
	},
	{
		kind: "final",
		en:   slideText{title: "See Them. Hear Them.", sub: "Join us in giving every story a voice."},
		zh:   slideText{title: "看見他們，聽見他們。", sub: "與我們一起，讓每個故事被聽見。"},
	},
}

// DeckSize is the number of slides in the presentation.
func DeckSize() int { return len(deck) }

// Deck returns the slides in l. Both Chinese variants share one text.
func Deck(l i18n.Lang) []Slide {
	out := make([]Slide, len(deck))
	for i, d := range deck {
		txt := d.en
		if i18n.IsChinese(l) {
			txt = d.zh
		}
		out[i] = Slide{Kind: d.kind, Title: txt.title, Subtitle: txt.sub, Points: txt.points, Image: d.image}
	}
	return out
}
