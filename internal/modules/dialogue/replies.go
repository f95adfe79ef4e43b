// README: Canned Turkish replies. Drivers write without diacritics; so does the bot.
package dialogue

const (
	replyGreeting      = "Selam abi! Nereden nereye yuk bakalim? Ornek: ankaradan izmire"
	replyGreetingFirst = "Selam abi, hos geldin! Ben AnkaGo yuk asistaniyim. Nereden nereye gidecegini yaz, sana uygun yukleri bulayim. Ornek: ankaradan izmire yuk var mi"
	replyFarewell      = "Gorusuruz abi, hayirli yolculuklar!"
	replyThanks        = "Rica ederim abi, hayirli isler!"

	replySwearWarning = "Abi ayip oluyor, duzgun konusalim. Yuk aramak istersen nereden nereye yazman yeterli."

	replyNotRelated = "Abi ben sadece yuk bakarim. Nereden nereye gideceksen onu yaz, ornek: ankaradan izmire"
	replyAskRoute   = "nerden nereye bakayim abi?"
	replyAskOrigin  = "Nereden cikis yapacaksin abi? Sehri yaz, her yere giden yukleri bulayim."
	replyNoMore     = "Baska yuk kalmadi abi. Yeni arama icin nereden nereye yazabilirsin."

	replyAIDown     = "Abi su an bir sorun oldu, birazdan tekrar dener misin?"
	replySearchDown = "Abi su an yuklere bakamiyorum, birazdan tekrar dene."

	faqTrial         = "Ilk 7 gun ucretsiz deneme abi, istedigin kadar yuk ara. Begenirsen devam edersin."
	faqNoObligation  = "Hicbir sey almak zorunda degilsin abi. Deneme suresi bitince istersen devam edersin, istemezsen birakirsin."
	faqNotifications = "Su an otomatik bildirim yok abi. Yuk lazim oldugunda yazman yeterli, aninda bakarim."
	faqHowTo         = "Cok basit abi: nereden nereye gidecegini yaz. Ornek: 'ankaradan izmire yuk var mi' ya da 'istanbul konya'. Istersen arac tipini de ekle: 'tenteli tir'."
	faqBotIdentity   = "Ben AnkaGo yuk asistaniyim abi, yapay zekayim ama yukler gercek. Nereden nereye bakalim?"
	faqPhoneMissing  = "Bazi ilanlarda telefon olmuyor abi, yuk sahibi paylasmamis. Telefonu olanlari ilanin sonunda goruyorsun."
	faqLoadPrice     = "Navlun fiyatini yuk sahibiyle konusuyorsun abi, biz fiyata karismiyoruz. Telefonu ilanin yaninda var."
	faqFreshness     = "Yukler gun boyu guncelleniyor abi, eski ilanlar otomatik dusuyor. Gordugun her yuk aktif demektir."
	faqInternational = "Su an sadece yurtici yukler var abi. Yurtdisi sefer icin yardimci olamiyorum maalesef."
	faqPricing       = "Ilk 7 gun ucretsiz abi. Sonrasi aylik uyelik, detaylari deneme bitince gonderiyorum. Simdi yuk bakalim mi?"
)

const intraCityPrefix = "Sehir ici yuk az olur abi, onun yerine %s cikisli yukleri de ekledim:\n\n"
