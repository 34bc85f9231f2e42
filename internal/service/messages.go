package service

// User-facing strings are kept in Uzbek, matching the product's UI
// language. Keys and code stay in English.
const (
	msgWorkStart       = "Yaxshi boshlanish!"
	msgWorkUnstoppable = "Sizni to'xtatib bo'lmaydi!"
	msgWorkMachine     = "Haqiqiy mashina!"
	msgWorkSmallSteps  = "Kichik qadamlar bilan boshlang."

	msgHealthBase      = "Sog'lik - eng katta boylik."
	msgHealthChampion  = "Chempion ruhiyati shakllanmoqda!"
	msgHealthSleepWarn = "Uyquga e'tibor bering, bugun ertaroq yoting."

	msgMindBase  = "Bilim olishdan to'xtamang."
	msgMindSharp = "Miyangiz pichoqdek o'tkir!"

	msgInsufficientData   = "Ma'lumotlar yetarli emas (kamida 5 kun kerak)."
	msgSleepBoostsWork    = "Siz ko'proq uxlagan kunlaringiz ish unumdorligingiz sezilarli oshadi!"
	msgLessSleepStillWork = "Qiziq, kamroq uyqu bilan ham ishlarni bajara olyapsiz (lekin uzoq muddatda zararli)."
	msgNoStrongLink       = "Uyqu va ish unumdorligi o'rtasida kuchli bog'liqlik topilmadi."
	msgStressSpending     = "Ishlar qolib ketganda ko'proq pul sarflashga moyilsiz (Stress Spending)."

	msgExpenseOverIncome = "Diqqat! Xarajatlaringiz daromaddan oshib ketdi."

	topFocusFallback = "General"
)
