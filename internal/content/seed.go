package content

import "github.com/voicethroughimage/vti/internal/i18n"

// StockVideoCover is the card image for submitted stories that have no photo.
const StockVideoCover = "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&q=80&w=800"

func unsplash(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?auto=format&fit=crop&q=80&w=1200"
}

// InitialStories are the published documentaries that always follow the
// stored stories on the public gallery.
func InitialStories() []Story {
	return []Story{
		{
			ID:            "doc-001",
			Type:          StoryVideo,
			Title:         "無聲的吶喊: 洛杉磯 Skid Row 紀實",
			Category:      CategoryHomelessness,
			Description:   "這部 4K 紀錄短片捕捉了清晨五點的 Skid Row。我們不使用煽情的配樂，只保留街道最真實的環境音，讓被忽視者的面容訴說他們的故事。",
			Date:          "JAN 2026",
			ImageURL:      unsplash("1444212477490-ca407925329e"),
			LocalVideoURL: "https://videos.pexels.com/video-files/3248357/3248357-uhd_2560_1440_25fps.mp4",
		},
		{
			ID:            "doc-002",
			Type:          StoryVideo,
			Title:         "重生: 走過成癮的十年",
			Category:      CategoryAddiction,
			Description:   "透過與三位康復者的深度訪談，我們探索了加州藥物成癮問題背後的社會結構缺口。",
			Date:          "DEC 2025",
			ImageURL:      unsplash("1501769214405-5e5ee5125a02"),
			LocalVideoURL: "https://videos.pexels.com/video-files/4631317/4631317-uhd_2560_1440_25fps.mp4",
		},
		{
			ID:          "doc-003",
			Type:        StoryPhoto,
			Title:       "唐人街的長者: 孤獨與堅韌",
			Category:    CategorySocialJustice,
			Description: "一組捕捉舊金山華埠長者生活現況的紀實攝影專題。",
			Date:        "FEB 2026",
			ImageURL:    unsplash("1516035069371-29a1b244cc32"),
			Photos: []string{
				"https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
				"https://images.unsplash.com/photo-1490730141103-6cac27aaab94",
				"https://images.unsplash.com/photo-1502134249126-9f3755a50d78",
			},
		},
		{
			ID:          "doc-004",
			Type:        StoryPhoto,
			Title:       "破碎後的縫合: 家暴倖存者影集",
			Category:    CategoryDomesticViolence,
			Description: "這組攝影作品以隱喻的方式，記錄了那些在「亞裔婦女收容所」獲得新生的面孔。",
			Date:        "JAN 2026",
			ImageURL:    unsplash("1508847154043-be5407fcaa5a"),
			Photos: []string{
				"https://images.unsplash.com/photo-1508847154043-be5407fcaa5a",
				"https://images.unsplash.com/photo-1532938911079-1b06ac7ceec7",
			},
		},
	}
}

// MockStories fill the admin story list while nothing has been stored.
func MockStories(l i18n.Lang) []Story {
	zh := i18n.IsChinese(l)
	pick := func(en, chinese string) string {
		if zh {
			return chinese
		}
		return en
	}
	return []Story{
		{
			ID:       "demo-story-1",
			Type:     StoryVideo,
			Title:    pick("Silent Cry: Inside Skid Row", "無聲的吶喊: 洛杉磯 Skid Row 紀實"),
			Category: CategoryHomelessness,
			Description: pick(
				"This 4K documentary short captures Skid Row at 5 AM. We use no dramatic music, only the raw ambient sounds of the street.",
				"這部 4K 紀錄短片捕捉了清晨五點的 Skid Row。我們不使用煽情的配樂，只保留街道最真實的環境音。"),
			Date:       "JAN 2026",
			ImageURL:   unsplash("1444212477490-ca407925329e"),
			AuthorName: "VTI Team",
		},
		{
			ID:       "demo-story-2",
			Type:     StoryPhoto,
			Title:    pick("Rebirth: Ten Years After Addiction", "重生: 走過成癮的十年"),
			Category: CategoryAddiction,
			Description: pick(
				"Through deep interviews with three recovering addicts, we explore the gaps in California's social structure.",
				"透過與三位康復者的深度訪談，我們探索了加州藥物成癮問題背後的社會結構缺口。"),
			Date:       "DEC 2025",
			ImageURL:   unsplash("1501769214405-5e5ee5125a02"),
			Location:   "San Francisco, CA",
			AuthorName: "Sarah Jenkins",
		},
	}
}
