package i18n

type entry struct {
	en, zhTW, zhCN, es string
}

var catalog = map[string]entry{
	// navigation
	"nav.home":      {"Home", "首頁", "首页", "Inicio"},
	"nav.about":     {"About", "關於我們", "关于我们", "Nosotros"},
	"nav.stories":   {"Stories", "故事", "故事", "Historias"},
	"nav.resources": {"Resources", "資源", "资源", "Recursos"},
	"nav.contact":   {"Contact", "聯絡我們", "联系我们", "Contacto"},
	"nav.chat":      {"AI Support", "AI 支援", "AI 支援", "Apoyo IA"},
	"nav.donate":    {"Donate", "捐款", "捐款", "Donar"},
	"nav.login":     {"Log In", "登入", "登录", "Entrar"},
	"nav.join":      {"Join", "加入", "加入", "Unirse"},
	"nav.profile":   {"Profile", "個人檔案", "个人资料", "Perfil"},
	"nav.admin":     {"Admin", "管理", "管理", "Admin"},
	"nav.signout":   {"Sign Out", "登出", "退出", "Salir"},

	// hero and home
	"hero.title":              {"Voice Through Image", "影像之聲", "影像之声", "Voz a Través de la Imagen"},
	"hero.subtitle":           {"Documenting homelessness and social issues in California, and connecting every story to help that exists today.", "以影像記錄加州的無家可歸與社會議題，並將每個故事連結到今天就能提供的援助。", "以影像记录加州的无家可归与社会议题，并将每个故事连接到今天就能提供的援助。", "Documentamos la falta de vivienda y los problemas sociales en California y conectamos cada historia con la ayuda disponible hoy."},
	"hero.cta_stories":        {"Watch Stories", "觀看故事", "观看故事", "Ver historias"},
	"hero.cta_donate":         {"Support Our Work", "支持我們", "支持我们", "Apoya nuestro trabajo"},
	"home.tag":                {"Recording Reality", "記錄真實", "记录真实", "Registrando la realidad"},
	"home.impact.stories":     {"Stories Documented", "已記錄故事", "已记录故事", "Historias documentadas"},
	"home.impact.helped":      {"People Connected", "已連結人數", "已连接人数", "Personas conectadas"},
	"home.impact.shelters":    {"Verified Shelters", "認證收容所", "认证收容所", "Refugios verificados"},
	"home.impact.volunteers":  {"Volunteers", "志工", "志愿者", "Voluntarios"},
	"home.method.tag":         {"Our Methodology", "我們的方法", "我们的方法", "Nuestra metodología"},
	"home.method.title":       {"Bridging Empathy & Action", "連結同理與行動", "连接同理与行动", "Uniendo empatía y acción"},
	"home.method.doc":         {"Documentary Journalism", "紀實報導", "纪实报道", "Periodismo documental"},
	"home.method.doc_desc":    {"Unveiling truth through raw, unfiltered imagery.", "以真實、未經修飾的影像揭示真相。", "以真实、未经修饰的影像揭示真相。", "Revelamos la verdad con imágenes sin filtros."},
	"home.method.action":      {"Immediate Action", "即時行動", "即时行动", "Acción inmediata"},
	"home.method.action_desc": {"Directly linking narratives to 70+ verified agencies.", "將故事直接連結至 70 多個認證機構。", "将故事直接连接至 70 多个认证机构。", "Vinculamos cada relato con más de 70 agencias verificadas."},
	"home.method.policy":      {"Policy Advocacy", "政策倡議", "政策倡议", "Incidencia política"},
	"home.method.policy_desc": {"Driving systemic change with visual evidence.", "以視覺證據推動系統性改變。", "以视觉证据推动系统性改变。", "Impulsamos el cambio con evidencia visual."},
	"home.news.title":         {"Daily Policy Brief", "每日政策摘要", "每日政策摘要", "Resumen diario de políticas"},
	"home.news.subtitle":      {"AI-generated summary of California social policy news from the last 7 days.", "由 AI 整理的加州近七日社會政策新聞摘要。", "由 AI 整理的加州近七日社会政策新闻摘要。", "Resumen generado por IA de las noticias de política social de California de los últimos 7 días."},
	"home.news.sources":       {"Sources", "資料來源", "资料来源", "Fuentes"},
	"home.news.generated":     {"Generated with Google Search grounding", "由 Google 搜尋驗證生成", "由 Google 搜索验证生成", "Generado con Google Search"},
	"home.news.fallback":      {"Offline briefing: showing the latest curated summary.", "離線摘要：顯示最新整理內容。", "离线摘要：显示最新整理内容。", "Resumen sin conexión: mostrando el último resumen preparado."},

	// footer
	"footer.desc":       {"A 501(c)(3) nonprofit using documentary media to amplify the voices of people experiencing homelessness, addiction and abuse in California.", "以紀實影像放大加州無家者、成癮者與受暴者聲音的 501(c)(3) 非營利組織。", "以纪实影像放大加州无家者、成瘾者与受暴者声音的 501(c)(3) 非营利组织。", "Organización sin fines de lucro 501(c)(3) que amplifica con medios documentales las voces de personas sin hogar, con adicciones o víctimas de abuso en California."},
	"footer.ein":        {"EIN: 41-2510011", "EIN：41-2510011", "EIN：41-2510011", "EIN: 41-2510011"},
	"footer.tax_exempt": {"Donations are tax-deductible to the extent allowed by law.", "捐款可依法申報抵稅。", "捐款可依法申报抵税。", "Las donaciones son deducibles según la ley."},
	"footer.governance": {"Governance", "治理", "治理", "Gobernanza"},
	"footer.deck":       {"View Official Deck", "觀看官方簡報", "观看官方简报", "Ver presentación oficial"},
	"footer.rights":     {"Voice Through Image Inc. All Rights Reserved.", "Voice Through Image Inc. 版權所有。", "Voice Through Image Inc. 版权所有。", "Voice Through Image Inc. Todos los derechos reservados."},
	"footer.incorporated": {"Incorporated Nov 4, 2025", "2025 年 11 月 4 日成立", "2025 年 11 月 4 日成立", "Constituida el 4 nov 2025"},

	// demo banner and welcome panel
	"banner.demo":        {"Demo mode: some features use local substitutes. Stories and edits saved here are visible to every visitor of this site.", "演示模式：部分功能使用本地替代。在此儲存的故事與變更，本站所有訪客皆可看見。", "演示模式：部分功能使用本地替代。在此保存的故事与更改，本站所有访客均可看到。", "Modo demo: algunas funciones usan sustitutos locales. Las historias y cambios guardados aquí son visibles para todos los visitantes."},
	"banner.degraded":    {"Connection lost: this session now saves in preview mode.", "連線中斷：本次工作階段改為預覽模式儲存。", "连接中断：本次会话改为预览模式保存。", "Conexión perdida: esta sesión guarda en modo vista previa."},
	"banner.retry":       {"Retry Connection", "重試連線", "重试连接", "Reintentar conexión"},
	"banner.dismiss":     {"Dismiss", "關閉", "关闭", "Cerrar"},
	"welcome.title":      {"Configuration Required", "需要設定", "需要设置", "Configuración requerida"},
	"welcome.text":       {"The site is running without some credentials. Everything still works with local substitutes.", "網站目前缺少部分憑證，所有功能仍可透過本地替代運作。", "网站目前缺少部分凭证，所有功能仍可通过本地替代运行。", "El sitio funciona sin algunas credenciales; todo sigue operando con sustitutos locales."},
	"welcome.continue":   {"Continue in Demo Mode", "以演示模式繼續", "以演示模式继续", "Continuar en modo demo"},

	// common
	"common.back":       {"Back", "返回", "返回", "Volver"},
	"common.cancel":     {"Cancel", "取消", "取消", "Cancelar"},
	"common.error":      {"Something went wrong. Please try again.", "發生錯誤，請再試一次。", "发生错误，请再试一次。", "Algo salió mal. Inténtalo de nuevo."},
	"common.loading":    {"Loading...", "載入中...", "加载中...", "Cargando..."},
	"common.processing": {"Processing...", "處理中...", "处理中...", "Procesando..."},
	"common.save":       {"Save", "儲存", "保存", "Guardar"},
	"common.submit":     {"Submit", "送出", "提交", "Enviar"},
	"common.delete":     {"Delete", "刪除", "删除", "Eliminar"},
	"common.search":     {"Search", "搜尋", "搜索", "Buscar"},
	"common.all":        {"All", "全部", "全部", "Todo"},
	"view":              {"View", "查看", "查看", "Ver"},

	// about
	"about.tag":                 {"Who We Are", "我們是誰", "我们是谁", "Quiénes somos"},
	"about.title":               {"About Voice Through Image", "關於影像之聲", "关于影像之声", "Sobre Voice Through Image"},
	"about.subtitle":            {"We believe every image can carry a voice that policy makers cannot ignore.", "我們相信每一張影像都能承載一個無法被忽視的聲音。", "我们相信每一张影像都能承载一个无法被忽视的声音。", "Creemos que cada imagen puede llevar una voz imposible de ignorar."},
	"about.vision_title":        {"Vision & Mission", "願景與使命", "愿景与使命", "Visión y misión"},
	"about.vision_sub":          {"Our Vision", "我們的願景", "我们的愿景", "Nuestra visión"},
	"about.vision_text":         {"A California where no one's story goes unseen and no one's need goes unmet.", "一個每個故事都被看見、每個需要都被回應的加州。", "一个每个故事都被看见、每个需要都被回应的加州。", "Una California donde ninguna historia pase desapercibida."},
	"about.mission_sub":         {"Our Mission", "我們的使命", "我们的使命", "Nuestra misión"},
	"about.mission_1":           {"Document lived experiences of homelessness, addiction and abuse with dignity and consent.", "以尊嚴與知情同意記錄無家可歸、成癮與受暴的真實經歷。", "以尊严与知情同意记录无家可归、成瘾与受暴的真实经历。", "Documentar con dignidad y consentimiento experiencias de falta de vivienda, adicción y abuso."},
	"about.mission_2":           {"Connect every story to verified, culturally sensitive resources.", "將每個故事連結至經過驗證且具文化敏感度的資源。", "将每个故事连接至经过验证且具文化敏感度的资源。", "Conectar cada historia con recursos verificados y culturalmente sensibles."},
	"about.mission_3":           {"Give advocates and policy makers visual evidence for systemic change.", "為倡議者與決策者提供推動系統改變的視覺證據。", "为倡议者与决策者提供推动系统改变的视觉证据。", "Dar a defensores y legisladores evidencia visual para el cambio."},
	"about.participate.title":   {"How to Participate", "如何參與", "如何参与", "Cómo participar"},
	"about.participate.step1":      {"Watch & Share", "觀看與分享", "观看与分享", "Mira y comparte"},
	"about.participate.step1_desc": {"Watch our documentaries and share them with your community.", "觀看我們的紀錄片並分享給你的社群。", "观看我们的纪录片并分享给你的社群。", "Mira nuestros documentales y compártelos."},
	"about.participate.step2":      {"Join Us", "加入我們", "加入我们", "Únete"},
	"about.participate.step2_desc": {"Create an account to submit stories and follow our work.", "建立帳號以投稿故事並追蹤我們的工作。", "建立账号以投稿故事并关注我们的工作。", "Crea una cuenta para enviar historias."},
	"about.participate.step3":      {"Submit a Story", "投稿故事", "投稿故事", "Envía una historia"},
	"about.participate.step3_desc": {"Share photos, video or audio of what you have witnessed.", "分享你所見證的照片、影片或錄音。", "分享你所见证的照片、视频或录音。", "Comparte fotos, video o audio de lo que has visto."},
	"about.volunteer.title":     {"Volunteer With Us", "成為志工", "成为志愿者", "Sé voluntario"},
	"about.volunteer.desc":      {"Filmmakers, translators, outreach workers and organizers: there is a place for you.", "無論你是影像工作者、翻譯、外展人員或組織者，這裡都有你的位置。", "无论你是影像工作者、翻译、外展人员或组织者，这里都有你的位置。", "Cineastas, traductores y organizadores: hay un lugar para ti."},
	"about.volunteer.roles":     {"Videography · Outreach · Events · Translation", "攝影 · 外展 · 活動 · 翻譯", "摄影 · 外展 · 活动 · 翻译", "Video · Alcance · Eventos · Traducción"},
	"about.volunteer.btn":       {"Apply to Volunteer", "申請成為志工", "申请成为志愿者", "Postúlate"},
	"about.donate.title":        {"Fuel the Mission", "為使命注入力量", "为使命注入力量", "Impulsa la misión"},
	"about.donate.subtitle":     {"Your gift funds equipment, field documentation and direct outreach.", "你的捐款將用於器材、實地紀錄與直接外展。", "你的捐款将用于器材、实地记录与直接外展。", "Tu donación financia equipo, documentación y alcance directo."},
	"about.donate.tax":          {"100% Tax Deductible", "100% 可抵稅", "100% 可抵税", "100% deducible"},
	"about.donate.btn":          {"Donate Now", "立即捐款", "立即捐款", "Dona ahora"},
	"about.history":             {"Corporate History", "組織沿革", "组织沿革", "Historia"},
	"about.history_text":        {"Voice Through Image Inc. was incorporated in California on November 4, 2025 and recognized as a 501(c)(3) public charity.", "Voice Through Image Inc. 於 2025 年 11 月 4 日在加州成立，並獲認定為 501(c)(3) 公益慈善組織。", "Voice Through Image Inc. 于 2025 年 11 月 4 日在加州成立，并获认定为 501(c)(3) 公益慈善组织。", "Voice Through Image Inc. se constituyó en California el 4 de noviembre de 2025 como organización benéfica 501(c)(3)."},
	"about.leadership":          {"Leadership", "領導團隊", "领导团队", "Liderazgo"},
	"about.founder":             {"Founder & Director", "創辦人暨總監", "创办人暨总监", "Fundador y director"},
	"about.roles":               {"Board Roles", "理事會職務", "理事会职务", "Cargos de la junta"},
	"about.roles_list":          {"President · Secretary · Treasurer", "理事長 · 秘書 · 財務", "理事长 · 秘书 · 财务", "Presidencia · Secretaría · Tesorería"},
	"about.legal":               {"Legal & Tax Transparency", "法律與稅務透明", "法律与税务透明", "Transparencia legal y fiscal"},
	"about.legal_text":          {"Voice Through Image Inc. is a tax-exempt organization under Section 501(c)(3) of the Internal Revenue Code. Contributions are deductible under Section 170.", "Voice Through Image Inc. 為美國國稅法第 501(c)(3) 條認定之免稅組織，捐款可依第 170 條抵稅。", "Voice Through Image Inc. 为美国国税法第 501(c)(3) 条认定之免税组织，捐款可依第 170 条抵税。", "Voice Through Image Inc. está exenta de impuestos según la Sección 501(c)(3); las contribuciones son deducibles según la Sección 170."},
	"about.legal_ein":           {"Federal EIN", "聯邦稅號", "联邦税号", "EIN federal"},

	// auth
	"auth.login.title":     {"Welcome Back", "歡迎回來", "欢迎回来", "Bienvenido de nuevo"},
	"auth.login.subtitle":  {"Sign in to submit stories and manage your profile.", "登入以投稿故事並管理個人檔案。", "登录以投稿故事并管理个人资料。", "Inicia sesión para enviar historias."},
	"auth.login.btn":       {"Sign In", "登入", "登录", "Iniciar sesión"},
	"auth.signup.title":    {"Join the Community", "加入社群", "加入社群", "Únete a la comunidad"},
	"auth.signup.subtitle": {"Create an account to share the stories you witness.", "建立帳號，分享你見證的故事。", "创建账号，分享你见证的故事。", "Crea una cuenta para compartir historias."},
	"auth.signup.btn":      {"Create Account", "建立帳號", "创建账号", "Crear cuenta"},
	"auth.google":          {"Continue with Google", "使用 Google 繼續", "使用 Google 继续", "Continuar con Google"},
	"auth.name":            {"Full Name", "姓名", "姓名", "Nombre"},
	"auth.email":           {"Email", "電子郵件", "电子邮件", "Correo"},
	"auth.password":        {"Password", "密碼", "密码", "Contraseña"},
	"auth.no_account":      {"New here? Create an account", "還沒有帳號？立即註冊", "还没有账号？立即注册", "¿Nuevo? Crea una cuenta"},
	"auth.have_account":    {"Already a member? Sign in", "已有帳號？登入", "已有账号？登录", "¿Ya tienes cuenta? Entra"},
	"auth.verify.title":    {"Verify Your Email", "驗證你的電子郵件", "验证你的电子邮件", "Verifica tu correo"},
	"auth.verify.text":     {"We sent a verification link to your inbox. Click it to activate your account.", "我們已寄出驗證連結，請點擊以啟用帳號。", "我们已发送验证链接，请点击以启用账号。", "Enviamos un enlace de verificación a tu correo."},
	"auth.verify.resend":   {"Resend Link", "重新寄送", "重新发送", "Reenviar enlace"},
	"auth.verify.simulate": {"Simulate Link Click", "模擬點擊連結", "模拟点击链接", "Simular clic"},
	"auth.verify.demo":     {"This demo has no e-mail server. Use the button below to simulate clicking the link.", "此演示環境沒有郵件伺服器，請使用下方按鈕模擬點擊連結。", "此演示环境没有邮件服务器，请使用下方按钮模拟点击链接。", "Esta demo no tiene servidor de correo. Usa el botón para simular el clic."},
	"auth.verify.sent":     {"Verification e-mail sent.", "驗證信已寄出。", "验证信已发送。", "Correo de verificación enviado."},
	"auth.signed_out":      {"You have been signed out.", "你已登出。", "你已退出。", "Sesión cerrada."},

	// profile
	"profile.title":          {"My Profile", "我的檔案", "我的资料", "Mi perfil"},
	"profile.manage":         {"Manage your account details.", "管理你的帳號資料。", "管理你的账号资料。", "Administra tu cuenta."},
	"profile.edit":           {"Edit Profile", "編輯檔案", "编辑资料", "Editar perfil"},
	"profile.save":           {"Save Changes", "儲存變更", "保存更改", "Guardar cambios"},
	"profile.avatar":         {"Avatar URL", "頭像網址", "头像网址", "URL del avatar"},
	"profile.saved":          {"Profile updated.", "檔案已更新。", "资料已更新。", "Perfil actualizado."},
	"profile.verified":       {"Verified", "已驗證", "已验证", "Verificado"},
	"profile.unverified":     {"Not verified", "未驗證", "未验证", "Sin verificar"},
	"profile.delete":         {"Delete Account", "刪除帳號", "删除账号", "Eliminar cuenta"},
	"profile.delete_confirm": {"This permanently deletes your account.", "此操作將永久刪除你的帳號。", "此操作将永久删除你的账号。", "Esto elimina tu cuenta permanentemente."},
	"profile.deleted":        {"Your account has been deleted.", "你的帳號已刪除。", "你的账号已删除。", "Tu cuenta fue eliminada."},

	// stories
	"stories.title":      {"Stories", "故事", "故事", "Historias"},
	"stories.subtitle":   {"Documentary films and photo essays from the streets of California.", "來自加州街頭的紀錄片與攝影集。", "来自加州街头的纪录片与摄影集。", "Documentales y ensayos fotográficos de las calles de California."},
	"stories.tab.video":  {"Documentaries", "紀錄片", "纪录片", "Documentales"},
	"stories.tab.photo":  {"Photo Essays", "攝影集", "摄影集", "Fotografía"},
	"stories.tab.audio":  {"Audio", "錄音", "录音", "Audio"},
	"stories.empty":      {"No stories in this category yet.", "此類別尚無故事。", "此类别尚无故事。", "Aún no hay historias en esta categoría."},
	"stories.submit":     {"Submit a Story", "投稿故事", "投稿故事", "Enviar historia"},
	"stories.by":         {"By", "作者", "作者", "Por"},
	"submit.title":       {"Share a Story", "分享故事", "分享故事", "Comparte una historia"},
	"submit.subtitle":    {"Upload photos, video or audio. Our team reviews every submission.", "上傳照片、影片或錄音，我們的團隊會審閱每一則投稿。", "上传照片、视频或录音，我们的团队会审阅每一则投稿。", "Sube fotos, video o audio. Revisamos cada envío."},
	"submit.media":       {"Media Files", "媒體檔案", "媒体文件", "Archivos"},
	"submit.location":    {"Location", "地點", "地点", "Ubicación"},
	"submit.success":     {"Thank you. Your story has been submitted for review.", "謝謝你，故事已送出審閱。", "谢谢你，故事已提交审阅。", "Gracias. Tu historia fue enviada para revisión."},
	"submit.preview":     {"Saved in preview mode. Your story is stored on this server and other visitors of this site can see it.", "已以預覽模式儲存，故事暫存於本伺服器，本站其他訪客也能看見。", "已以预览模式保存，故事暂存于本服务器，本站其他访客也能看到。", "Guardado en modo vista previa. La historia queda en este servidor y otros visitantes pueden verla."},
	"submit.login":       {"Please sign in to submit a story.", "請先登入再投稿。", "请先登录再投稿。", "Inicia sesión para enviar una historia."},
	"submit.no_media":    {"Please attach at least one photo, video or audio file.", "請至少附上一個照片、影片或錄音檔。", "请至少附上一个照片、视频或录音文件。", "Adjunta al menos un archivo."},
	"submit.bad_file":    {"One of the files could not be accepted.", "有檔案無法接受。", "有文件无法接受。", "Un archivo no fue aceptado."},

	// resources
	"resources.title":           {"Resource Directory", "資源目錄", "资源目录", "Directorio de recursos"},
	"resources.subtitle":        {"Verified organizations across California, plus real-time AI search.", "加州各地經驗證的機構，搭配即時 AI 搜尋。", "加州各地经验证的机构，搭配实时 AI 搜索。", "Organizaciones verificadas en California y búsqueda con IA."},
	"resources.assist.title":    {"AI Resource Assistant", "AI 資源助理", "AI 资源助理", "Asistente de recursos IA"},
	"resources.assist.query":    {"What do you need?", "你需要什麼協助？", "你需要什么帮助？", "¿Qué necesitas?"},
	"resources.assist.location": {"Location", "所在位置", "所在位置", "Ubicación"},
	"resources.assist.btn":      {"Ask AI", "詢問 AI", "询问 AI", "Preguntar"},
	"resources.search":          {"Search the directory", "搜尋目錄", "搜索目录", "Buscar en el directorio"},
	"resources.results":         {"Search Results", "搜尋結果", "搜索结果", "Resultados"},
	"resources.no_results":      {"No matching organizations.", "找不到相符的機構。", "找不到相符的机构。", "Sin resultados."},
	"resources.categories":      {"Browse by Category", "依類別瀏覽", "按类别浏览", "Explorar por categoría"},
	"resources.hotline":         {"In crisis? Call 911. For 24/7 help finding services, dial 2-1-1.", "緊急情況請撥 911；24 小時資源協助請撥 2-1-1。", "紧急情况请拨 911；24 小时资源协助请拨 2-1-1。", "¿En crisis? Llama al 911. Para ayuda 24/7, marca 2-1-1."},
	"resources.hours":           {"Hours", "服務時間", "服务时间", "Horario"},
	"resources.website":         {"Website", "網站", "网站", "Sitio web"},
	"resources.community":       {"Community Added", "社群新增", "社群新增", "Añadido por la comunidad"},
	"resources.cat.shelter":          {"Shelter", "緊急收容所", "紧急收容所", "Refugio"},
	"resources.cat.food":             {"Food Bank", "食物銀行", "食物银行", "Banco de alimentos"},
	"resources.cat.legal":            {"Legal Aid", "法律援助", "法律援助", "Ayuda legal"},
	"resources.cat.mental_health":    {"Mental Health", "心理健康", "心理健康", "Salud mental"},
	"resources.cat.chinese_services": {"Chinese Services", "華語服務", "华语服务", "Servicios en chino"},
	"resources.cat.dv":               {"Domestic Violence", "家暴援助", "家暴援助", "Violencia doméstica"},
	"resources.cat.recovery":         {"Addiction Recovery", "戒癮康復", "戒瘾康复", "Recuperación"},
	"resources.cat.hotline":          {"Hotline", "熱線", "热线", "Línea directa"},
	"resources.cat.other":            {"Other", "其他", "其他", "Otro"},

	// chat
	"chat.title":       {"AI Support Assistant", "AI 支援助理", "AI 支援助理", "Asistente de apoyo IA"},
	"chat.welcome":     {"Hello. I'm the Voice Through Image support assistant. How can I help you today?", "你好，我是影像之聲的支援助理。今天有什麼可以幫你的嗎？", "你好，我是影像之声的支援助理。今天有什么可以帮你的吗？", "Hola. Soy el asistente de Voice Through Image. ¿En qué puedo ayudarte?"},
	"chat.placeholder": {"Type your message...", "輸入訊息...", "输入消息...", "Escribe tu mensaje..."},
	"chat.send":        {"Send", "傳送", "发送", "Enviar"},
	"chat.error":       {"I'm having trouble connecting right now. Please try again later.", "目前連線發生問題，請稍後再試。", "目前连接出现问题，请稍后再试。", "Tengo problemas de conexión. Inténtalo más tarde."},
	"chat.disclaimer":  {"Not a replacement for emergency services. In an emergency call 911.", "本服務不能取代緊急服務，緊急情況請撥 911。", "本服务不能取代紧急服务，紧急情况请拨 911。", "No sustituye a los servicios de emergencia. Llama al 911."},

	// news
	"news.title":   {"Policy News", "政策新聞", "政策新闻", "Noticias"},
	"news.loading": {"Gathering today's brief...", "正在整理今日摘要...", "正在整理今日摘要...", "Preparando el resumen..."},
	"news.sources": {"Sources", "來源", "来源", "Fuentes"},

	// contact
	"contact.tag":          {"Get in Touch", "與我們聯繫", "与我们联系", "Contáctanos"},
	"contact.title":        {"Contact Us", "聯絡我們", "联系我们", "Contáctanos"},
	"contact.subtitle":     {"Questions, story ideas or partnerships: we would love to hear from you.", "無論是問題、故事構想或合作提案，我們都樂意聆聽。", "无论是问题、故事构想或合作提案，我们都乐意聆听。", "Preguntas, ideas o alianzas: queremos escucharte."},
	"contact.office":       {"Office", "辦公室", "办公室", "Oficina"},
	"contact.email":        {"Email", "電子郵件", "电子邮件", "Correo"},
	"contact.phone":        {"Phone", "電話", "电话", "Teléfono"},
	"contact.form.title":   {"Send a Message", "傳送訊息", "发送消息", "Envía un mensaje"},
	"contact.form.name":    {"Name", "姓名", "姓名", "Nombre"},
	"contact.form.email":   {"Email", "電子郵件", "电子邮件", "Correo"},
	"contact.form.subject": {"Subject", "主旨", "主题", "Asunto"},
	"contact.form.message": {"Message", "訊息", "消息", "Mensaje"},
	"contact.form.send":    {"Send Message", "送出訊息", "发送消息", "Enviar mensaje"},
	"contact.success":      {"Thank you. We'll get back to you soon.", "謝謝，我們會盡快回覆你。", "谢谢，我们会尽快回复你。", "Gracias. Te responderemos pronto."},

	// volunteer
	"volunteer.title":        {"Volunteer Application", "志工申請", "志愿者申请", "Solicitud de voluntariado"},
	"volunteer.subtitle":     {"Lend your skills to amplify unheard voices.", "用你的專長放大未被聽見的聲音。", "用你的专长放大未被听见的声音。", "Pon tus habilidades al servicio de voces no escuchadas."},
	"volunteer.form.name":    {"Full Name", "姓名", "姓名", "Nombre completo"},
	"volunteer.form.phone":   {"Phone", "電話", "电话", "Teléfono"},
	"volunteer.form.email":   {"Email", "電子郵件", "电子邮件", "Correo"},
	"volunteer.form.role":    {"Area of Interest", "有興趣的領域", "感兴趣的领域", "Área de interés"},
	"volunteer.form.message": {"About You", "自我介紹", "自我介绍", "Sobre ti"},
	"volunteer.success":      {"Application Received", "已收到申請", "已收到申请", "Solicitud recibida"},
	"volunteer.success_text": {"Our coordinator will review your profile and reach out within 3-5 business days.", "我們的協調員將審閱你的資料，並於 3 至 5 個工作天內與你聯繫。", "我们的协调员将审阅你的资料，并于 3 至 5 个工作日内与你联系。", "Nuestro coordinador revisará tu perfil y te contactará en 3 a 5 días hábiles."},

	// donate
	"donate.page.title":   {"Support Voice Through Image", "支持影像之聲", "支持影像之声", "Apoya Voice Through Image"},
	"donate.page.sub":     {"Every contribution funds documentation, outreach and advocacy across California.", "每一筆捐款都將用於加州各地的紀錄、外展與倡議。", "每一笔捐款都将用于加州各地的记录、外展与倡议。", "Cada aporte financia documentación, alcance e incidencia en California."},
	"donate.tiers.title":  {"Where Your Gift Goes", "捐款用途", "捐款用途", "A dónde va tu donación"},
	"donate.tier1.title":  {"Field Equipment", "拍攝器材", "拍摄器材", "Equipo de campo"},
	"donate.tier1.desc":   {"Cameras, audio recorders and storage for field teams.", "為實地團隊提供相機、錄音設備與儲存裝置。", "为实地团队提供相机、录音设备与存储设备。", "Cámaras, grabadoras y almacenamiento."},
	"donate.tier2.title":  {"Community Outreach", "社區外展", "社区外展", "Alcance comunitario"},
	"donate.tier2.desc":   {"Connecting storytellers to shelters, food and legal aid.", "將講述者連結至收容所、食物與法律援助。", "将讲述者连接至收容所、食物与法律援助。", "Conectamos a narradores con refugios, comida y ayuda legal."},
	"donate.tier3.title":  {"Post-Production", "後製", "后期制作", "Postproducción"},
	"donate.tier3.desc":   {"Editing, translation and distribution of finished films.", "影片剪輯、翻譯與發行。", "影片剪辑、翻译与发行。", "Edición, traducción y distribución."},
	"donate.secure":       {"Donate Securely", "安全捐款", "安全捐款", "Donar de forma segura"},
	"donate.fee_note":     {"Processed by Zeffy: 100% of your gift reaches us.", "由 Zeffy 處理：你的捐款 100% 交予我們。", "由 Zeffy 处理：你的捐款 100% 交予我们。", "Procesado por Zeffy: recibimos el 100%."},
	"donate.check":        {"Prefer to give by check? Mail it to our Walnut office.", "想以支票捐款？請寄至我們的 Walnut 辦公室。", "想以支票捐款？请寄至我们的 Walnut 办公室。", "¿Prefieres cheque? Envíalo a nuestra oficina en Walnut."},
	"donate.deductible":   {"Tax Deductible", "可抵稅", "可抵税", "Deducible"},

	// presentation
	"presentation.exit": {"Exit Deck", "離開簡報", "离开简报", "Salir"},
	"presentation.next": {"Next", "下一頁", "下一页", "Siguiente"},
	"presentation.prev": {"Previous", "上一頁", "上一页", "Anterior"},

	// admin
	"admin.title":          {"Admin Dashboard", "管理後台", "管理后台", "Panel de administración"},
	"admin.tab.resources":  {"Resources", "資源", "资源", "Recursos"},
	"admin.tab.stories":    {"Stories", "故事", "故事", "Historias"},
	"admin.tab.inbox":      {"Inbox", "收件匣", "收件箱", "Bandeja"},
	"admin.add_resource":   {"Add Resource", "新增資源", "新增资源", "Añadir recurso"},
	"admin.add_story":      {"Add Story", "新增故事", "新增故事", "Añadir historia"},
	"admin.edit_story":     {"Edit Story", "編輯故事", "编辑故事", "Editar historia"},
	"admin.delete_confirm": {"Are you sure you want to delete this item?", "確定要刪除此項目嗎？", "确定要删除此项目吗？", "¿Seguro que quieres eliminar este elemento?"},
	"admin.form.name":      {"Organization Name", "機構名稱", "机构名称", "Nombre"},
	"admin.form.region":    {"Region", "地區", "地区", "Región"},
	"admin.form.type":      {"Type", "類型", "类型", "Tipo"},
	"admin.form.contact":   {"Contact", "聯絡方式", "联系方式", "Contacto"},
	"admin.form.location":  {"Location", "地點", "地点", "Ubicación"},
	"admin.form.desc":      {"Description", "描述", "描述", "Descripción"},
	"admin.form.hours":     {"Operating Hours", "服務時間", "服务时间", "Horario"},
	"admin.form.website":   {"Website", "網站", "网站", "Sitio web"},
	"admin.story.title":    {"Title", "標題", "标题", "Título"},
	"admin.story.type":     {"Media Type", "媒體類型", "媒体类型", "Tipo de medio"},
	"admin.story.category": {"Category", "類別", "类别", "Categoría"},
	"admin.story.cover":    {"Cover Image URL", "封面圖片網址", "封面图片网址", "URL de portada"},
	"admin.story.media":    {"Media URL", "媒體網址", "媒体网址", "URL del medio"},
	"admin.story.author":   {"Author", "作者", "作者", "Autor"},
	"admin.success":        {"Saved successfully.", "儲存成功。", "保存成功。", "Guardado."},
	"admin.deleted":        {"Deleted.", "已刪除。", "已删除。", "Eliminado."},
	"admin.preview_mode":   {"Preview mode: changes are stored on this server and shown to every visitor of this site.", "預覽模式：變更儲存於本伺服器，本站所有訪客皆可看見。", "预览模式：更改保存于本服务器，本站所有访客均可看到。", "Modo vista previa: los cambios se guardan en este servidor y todos los visitantes los ven."},
	"admin.inbox.empty":    {"No submissions yet.", "尚無投遞。", "尚无投递。", "Sin envíos."},
	"admin.tab.activity":   {"Activity", "活動紀錄", "活动记录", "Actividad"},
	"admin.activity.empty": {"No changes recorded yet.", "尚無變更紀錄。", "尚无变更记录。", "Sin cambios registrados."},
	"admin.activity.local": {"local only", "僅本機", "仅本机", "solo local"},
	"admin.forbidden":      {"Admin access required.", "需要管理員權限。", "需要管理员权限。", "Se requiere acceso de administrador."},
}
