package i18n

// entry - перевод одного ключа
type entry struct {
	English string
	Yoruba  string
}

// table - все строки интерфейса
var table = map[string]entry{
	// App Shell
	"appTitle": {English: "DriveSure Lagos", Yoruba: "DriveSure Eko"},
	"driver":   {English: "Driver", Yoruba: "Awako"},
	"officer":  {English: "Officer", Yoruba: "Dógún-Dógún"},
	"online":   {English: "Online", Yoruba: "Lori Ayelujara"},
	"offline":  {English: "Offline", Yoruba: "Pàápa Ayelujara"},

	// Auth Screen
	"loginTitle":       {English: "Welcome Back", Yoruba: "Kaabọ Pada"},
	"loginSubtitle":    {English: "Sign in to access your dashboard", Yoruba: "Wọle lati wọle si dashboard rẹ"},
	"registerTitle":    {English: "Create Account", Yoruba: "Ṣẹda Akanti"},
	"registerSubtitle": {English: "Get started with DriveSure Lagos", Yoruba: "Bẹrẹ pẹlu DriveSure Eko"},
	"email":            {English: "Email", Yoruba: "Imeeli"},
	"password":         {English: "Password", Yoruba: "Ọrọigbaniwọle"},
	"fullName":         {English: "Full Name", Yoruba: "Orukọ Kikun"},
	"role":             {English: "I am a...", Yoruba: "Mo jẹ..."},
	"login":            {English: "Login", Yoruba: "Wọle"},
	"register":         {English: "Register", Yoruba: "Forukọsilẹ"},
	"goToRegister":     {English: "Don't have an account?", Yoruba: "Ṣe o ko ni akanti bi?"},
	"goToLogin":        {English: "Already have an account?", Yoruba: "Ṣe o ti ni akanti tẹlẹ?"},
	"loginError":       {English: "Invalid email or password.", Yoruba: "Imeeli tabi ọrọigbaniwọle ti ko tọ."},
	"registerError":    {English: "User with this email already exists.", Yoruba: "Olumulo pẹlu imeeli yii ti wa tẹlẹ."},
	"registering":      {English: "Registering...", Yoruba: "Nforukọsilẹ..."},
	"loggingIn":        {English: "Logging in...", Yoruba: "N wọle..."},

	// Bottom Nav
	"navDashboard": {English: "Dashboard", Yoruba: "Ibi Iwaju"},
	"navBooking":   {English: "Book", Yoruba: "Ṣe Iforukọsilẹ"},
	"navDocuments": {English: "Docs", Yoruba: "Àwọn ìwé"},
	"navProfile":   {English: "Profile", Yoruba: "Àkọọ́lẹ̀"},
	"navTraffic":   {English: "Traffic", Yoruba: "Ìjábọ́"},
	"navFines":     {English: "Fines", Yoruba: "Ìtanràn"},

	// Driver Dashboard
	"roadworthinessCertificate": {English: "Roadworthiness Certificate", Yoruba: "Iwe-ẹri Yiyẹ Oju-ọna"},
	"status":                    {English: "Status", Yoruba: "Ipo"},
	"valid":                     {English: "Valid", Yoruba: "Wulo"},
	"expires":                   {English: "Expires", Yoruba: "Yoo Pari"},
	"viewQrCode":                {English: "View QR Code", Yoruba: "Wo Koodu QR"},
	"notifications":             {English: "Notifications", Yoruba: "Àwọn ìfitónilétí"},
	"renewalReminder":           {English: "Renewal Reminder", Yoruba: "Ìránnilétí Àtúse"},
	"renewalMsg":                {English: "Your certificate expires in 15 days.", Yoruba: "Iwe-ẹri rẹ yoo pari ni ọjọ 15."},
	"showToOfficer":             {English: "Show this code to the enforcement officer.", Yoruba: "Fi koodu yii han fun ọlọpa."},

	// Officer Dashboard
	"officerPortal":      {English: "Officer Portal", Yoruba: "Oju-ọna Oṣiṣẹ"},
	"scanToVerify":       {English: "Scan to Verify", Yoruba: "Ṣayẹwo lati Daju"},
	"scanPrompt":         {English: "Scan driver's QR code to verify roadworthiness.", Yoruba: "Ṣayẹwo koodu QR awakọ lati jẹrisi yiyẹ oju-ọna."},
	"verifying":          {English: "Verifying...", Yoruba: "N jẹrisi..."},
	"verificationResult": {English: "Verification Result", Yoruba: "Esi Ijerisi"},
	"vehicleDetails":     {English: "Vehicle Details", Yoruba: "Awọn alaye Ọkọ"},
	"certificateValid":   {English: "Certificate is Valid", Yoruba: "Iwe-ẹri Wulo"},
	"certificateInvalid": {English: "Certificate is Invalid/Expired", Yoruba: "Iwe-ẹri Ko Wulo/Ti Pari"},
	"startScan":          {English: "Start Scan", Yoruba: "Bẹrẹ Skena"},
	"scanning":           {English: "Scanning...", Yoruba: "N Skena..."},
	"scanAnother":        {English: "Scan Another", Yoruba: "Ṣayẹwo Omiiran"},
	"invalidQrCode":      {English: "Invalid QR Code Data", Yoruba: "Data Koodu QR ti ko tọ"},

	// Booking
	"bookInspection":    {English: "Book Inspection", Yoruba: "Ṣe Iforukọsilẹ Ayẹwo"},
	"step1":             {English: "Step 1: Select a Center", Yoruba: "Igbesẹ 1: Yan Ile-iṣẹ kan"},
	"step2":             {English: "Step 2: Choose Date & Time", Yoruba: "Igbesẹ 2: Yan Ọjọ & Aago"},
	"step3":             {English: "Step 3: Confirmation", Yoruba: "Igbesẹ 3: Ifẹsẹmulẹ"},
	"selectCenter":      {English: "Select an inspection center", Yoruba: "Yan ile-iṣẹ ayẹwo kan"},
	"selectDate":        {English: "Select a date", Yoruba: "Yan ọjọ kan"},
	"selectTime":        {English: "Select a time", Yoruba: "Yan aago kan"},
	"confirmBooking":    {English: "Confirm Booking", Yoruba: "Fọwọsi Iforukọsilẹ"},
	"bookingConfirmed":  {English: "Booking Confirmed!", Yoruba: "Iforukọsilẹ ti jẹrisi!"},
	"bookingSuccessMsg": {English: "Your inspection is booked. You will receive a notification reminder.", Yoruba: "A ti ṣe iforukọsilẹ ayẹwo rẹ. Iwọ yoo gba olurannileti iwifunni kan."},

	// Documents
	"myDocuments":    {English: "My Documents", Yoruba: "Àwọn ìwé mi"},
	"uploadDocument": {English: "Upload Document", Yoruba: "Gbe iwe soke"},
	"vehicleLicense": {English: "Vehicle License", Yoruba: "Iwe-aṣẹ ọkọ"},
	"insurance":      {English: "Insurance", Yoruba: "Iṣeduro"},
	"inspectionSlip": {English: "Inspection Slip", Yoruba: "Iwe Ayẹwo"},

	// Profile
	"myProfile":   {English: "My Profile", Yoruba: "Àkọọ́lẹ̀ mi"},
	"driverInfo":  {English: "Driver Information", Yoruba: "Alaye Awakọ"},
	"vehicleInfo": {English: "Vehicle Information", Yoruba: "Alaye Ọkọ"},
	"name":        {English: "Name", Yoruba: "Orukọ"},
	"phone":       {English: "Phone", Yoruba: "Foonu"},
	"plateNumber": {English: "Plate Number", Yoruba: "Nọmba Pẹlẹ"},
	"vin":         {English: "VIN", Yoruba: "VIN"},
	"logout":      {English: "Logout", Yoruba: "Jade"},

	// AI Assistant
	"aiAssistantTitle":       {English: "Drive-Law Assistant", Yoruba: "Olùrànlọ́wọ́ Òfin-wakọ̀"},
	"aiAssistantWelcome":     {English: "Welcome! Ask me anything about Lagos traffic laws.", Yoruba: "Kaabo! Beere ohunkohun nipa awọn ofin ijabọ Eko."},
	"aiAssistantPlaceholder": {English: "Type your question...", Yoruba: "Kọ ìbéèrè rẹ..."},
	"close":                  {English: "Close", Yoruba: "Tì"},

	// Traffic Screen
	"trafficReport":      {English: "Traffic Report", Yoruba: "Ìròyìn Ijabọ"},
	"getAIBriefing":      {English: "Get AI Traffic Briefing", Yoruba: "Gba Àkópọ̀ Ijabọ AI"},
	"generatingBriefing": {English: "Generating briefing...", Yoruba: "N ṣe àkópọ̀..."},
	"trafficBriefing":    {English: "AI Traffic Briefing", Yoruba: "Àkópọ̀ Ijabọ AI"},
	"lastUpdated":        {English: "Last updated", Yoruba: "Ìgbà tí a ṣe àgbéyẹ̀wò kẹ́hìn"},
	"heavy":              {English: "Heavy", Yoruba: "O Po"},
	"moderate":           {English: "Moderate", Yoruba: "Dede"},
	"light":              {English: "Light", Yoruba: "Fẹẹrẹ"},

	// Fines Screen
	"myFines":   {English: "My Fines & Penalties", Yoruba: "Àwọn Ìtanràn mi"},
	"violation": {English: "Violation", Yoruba: "Ìrúfin"},
	"amount":    {English: "Amount", Yoruba: "Iye"},
	"payNow":    {English: "Pay Now", Yoruba: "Sanwó Báyìí"},
	"paid":      {English: "Paid", Yoruba: "Sanwó"},
	"unpaid":    {English: "Unpaid", Yoruba: "Aìsan"},
	"noFines":   {English: "Great job! You have no outstanding fines.", Yoruba: "Iṣẹ́ ribiribi! O ko ni ìtanràn kankan."},
	"paying":    {English: "Processing...", Yoruba: "N ṣiṣẹ..."},
}
