package assistant

import (
	"fmt"
	"strings"
	"time"
)

// Persona is the system instruction of the support chat.
const Persona = `You are a compassionate, trauma-informed AI support assistant for "Voice Through Image", a non-profit documenting homelessness and social issues in California. Your goal is to provide empathetic support, answer questions about our mission (storytelling, advocacy, resources), and guide users to the "Resources" page if they need help. You are not a replacement for emergency services (911). Keep responses concise, warm, and professional. If asked about specific shelters, you can mention we have a verified directory.`

// DefaultLocation is the area assumed by the resource search.
const DefaultLocation = "California"

// Resource search texts.
const (
	ResourceDemoText     = "【演示模式】目前未連接 API 金鑰，無法進行實時 AI 搜索。但別擔心，您仍然可以瀏覽我們下方整理好的 70+ 個驗證機構目錄。請直接點擊下方的「緊急收容所」或「食物銀行」類別查看詳情。"
	ResourceBusyText     = "目前系統繁忙，請參考下方目錄。"
	ResourceQuotaText    = "【系統提示：實時搜索額度已達上限】\n\n目前無法進行實時網頁檢索，但我們已為您準備了下方 70+ 個經過驗證的核心機構目錄。請直接點擊下方類別查看詳情，或撥打 2-1-1 獲取 24 小時人工支援。"
	ResourceTimeoutText  = "連線超時。請查閱下方 70+ 核心機構清單，或撥打 2-1-1 獲取 24 小時即時支援。"
	ResourceSourceHeader = "\n\n--- 驗證來源 (Verified Sources) ---"
	ResourceSourceTitle  = "新聞來源"
	// UnavailableText is shown when the resource search itself cannot run.
	UnavailableText = "Unable to fetch real-time info. Please check the directory below or call 2-1-1."
)

// resourceThinkingBudget caps the reasoning tokens of the resource search.
const resourceThinkingBudget = 2000

func resourcePrompt(query, location string) string {
	return fmt.Sprintf(`
你是 "Voice Through Image" 平台的專業資深社工。
用戶需求: "%[1]s"
所在位置: "%[2]s"

任務要求:
1. 請使用 Google Search 尋找位於 %[2]s 或 %[1]s 所指區域的最新緊急資源。
2. 語氣必須專業、具備創傷知情意識。
3. 語言優先使用繁體中文。
`, query, location)
}

func newsPrompt(now time.Time, lang string) string {
	language := "English"
	if isChinese(lang) {
		language = "Traditional Chinese"
	}
	return fmt.Sprintf(`
Current Date: %s (Year %d).
Provide a 3-point summary of critical social policy or homelessness news in California from the last 7 days.
Focus on %d updates.
Language: %s.
`, now.Format("2006-01-02"), now.Year(), now.Year(), language)
}

func isChinese(lang string) bool {
	return strings.HasPrefix(lang, "zh")
}

// News fallback texts.
const (
	newsEmptyZh = "暫無今日摘要。"
	newsEmptyEn = "No news summary available."
	// NewsSourceTitle names a source without a title.
	NewsSourceTitle = "News Source"
)

var fallbackSources = []Source{
	{Title: "California Housing Finance Agency", URI: "https://www.calhfa.ca.gov"},
	{Title: "LA Homeless Services Authority (LAHSA)", URI: "https://www.lahsa.org"},
	{Title: "SF Dept of Homelessness & Supportive Housing", URI: "https://hsh.sfgov.org"},
}

const fallbackNewsZh = `1. 加州政府宣佈 2025 年度撥款 15 億美元用於擴建主要城市（如洛杉磯與舊金山）的緊急住房基礎設施，重點關注家庭與退伍軍人。
2. 洛杉磯縣最新的 2025 Homeless Count 初步數據顯示，由於「租金保障」政策的實施，特定區域的流離失所增長率有所放緩，但仍面臨巨大挑戰。
3. 針對華裔社區的「文化敏感醫療」倡議在北加州試點成功，多個非營利機構將於本季度增加國粵語心理健康諮詢的時段。`

const fallbackNewsEn = `1. California allocates $1.5B for 2025 emergency housing infrastructure in major hubs, targeting families and veterans.
2. New 2025 LAHSA data suggests a slowing growth rate in homelessness in key districts due to temporary rent protection programs.
3. Culturally-sensitive mental health initiatives for Asian communities are scaling across Northern California this quarter, increasing Mandarin/Cantonese support capacity.`

// FallbackNews is the curated brief used without a live answer.
func FallbackNews(lang string) NewsResult {
	text := fallbackNewsEn
	if isChinese(lang) {
		text = fallbackNewsZh
	}
	return NewsResult{
		Text:       text,
		Sources:    append([]Source(nil), fallbackSources...),
		IsFallback: true,
	}
}
