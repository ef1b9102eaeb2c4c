package locale

// Message keys used across the site.
const (
	KeyInvalidPayload  Key = "invalid_payload"
	KeyInvalidLanguage Key = "invalid_language"
	KeyServerError     Key = "server_error"
	KeyNotFound        Key = "not_found"

	KeyMissingFields   Key = "missing_fields"
	KeyInvalidEmail    Key = "invalid_email"
	KeyPastDate        Key = "past_date"
	KeyInvalidDateTime Key = "invalid_datetime"
	KeySlotTaken       Key = "slot_taken"
	KeyUnknownService  Key = "unknown_service"
	KeyBookingSuccess  Key = "booking_success"
	KeyBookingFailed   Key = "booking_failed"

	KeyContactMissingFields Key = "contact_missing_fields"
	KeyContactFailed        Key = "contact_failed"
	KeyReviewMissingFields  Key = "review_missing_fields"
	KeyReviewInvalidStar    Key = "review_invalid_star"
	KeyReviewFailed         Key = "review_failed"

	KeyChatInvalidInput Key = "chat_invalid_input"
	KeyChatUnavailable  Key = "chat_unavailable"
	KeyChatFailed       Key = "chat_failed"
	KeyChatSystemPrompt Key = "chat_system_prompt"

	KeyServicesTitle        Key = "services_title"
	KeyServicesSubtitle     Key = "services_subtitle"
	KeyTeamTitle            Key = "team_title"
	KeyTeamSubtitle         Key = "team_subtitle"
	KeyPricingTitle         Key = "pricing_title"
	KeyPricingSubtitle      Key = "pricing_subtitle"
	KeyPricingMonthly       Key = "pricing_monthly"
	KeyPricingYearly        Key = "pricing_yearly"
	KeyPricingCTA           Key = "pricing_cta"
	KeyPricingDisclaimer    Key = "pricing_disclaimer"
	KeyEquipmentTitle       Key = "equipment_title"
	KeyEquipmentSubtitle    Key = "equipment_subtitle"
	KeyTestimonialsTitle    Key = "testimonials_title"
	KeyTestimonialsSubtitle Key = "testimonials_subtitle"

	KeyBookingEmailSubject Key = "booking_email_subject"
	KeyBookingEmailBody    Key = "booking_email_body"
	KeyContactEmailSubject Key = "contact_email_subject"
)

var messages = map[Key]map[Locale]string{
	KeyInvalidPayload: {
		French:  "Requête invalide.",
		English: "Invalid request body.",
		Arabic:  "طلب غير صالح.",
	},
	KeyInvalidLanguage: {
		French:  "Langue invalide.",
		English: "Invalid language.",
		Arabic:  "لغة غير صالحة.",
	},
	KeyServerError: {
		French:  "Une erreur s'est produite. Veuillez réessayer.",
		English: "An error occurred. Please try again.",
		Arabic:  "حدث خطأ. يرجى المحاولة مرة أخرى.",
	},
	KeyNotFound: {
		French:  "Ressource introuvable.",
		English: "Resource not found.",
		Arabic:  "المورد غير موجود.",
	},
	KeyMissingFields: {
		French:  "Le nom, l'email, le téléphone, la date, l'heure et le service sont obligatoires.",
		English: "Name, email, phone, date, time and service are required.",
		Arabic:  "الاسم والبريد الإلكتروني والهاتف والتاريخ والوقت والخدمة مطلوبة.",
	},
	KeyInvalidEmail: {
		French:  "Adresse email invalide.",
		English: "Invalid email address.",
		Arabic:  "عنوان البريد الإلكتروني غير صالح.",
	},
	KeyPastDate: {
		French:  "Impossible de sélectionner une date passée.",
		English: "You cannot select a past date.",
		Arabic:  "لا يمكن اختيار تاريخ سابق.",
	},
	KeyInvalidDateTime: {
		French:  "Veuillez sélectionner une date et une heure valides (lundi-vendredi 8h-17h, samedi 8h-12h).",
		English: "Please select a valid date and time (Monday-Friday 8:00-17:00, Saturday 8:00-12:00).",
		Arabic:  "يرجى اختيار تاريخ ووقت صالحين (الإثنين-الجمعة 8:00-17:00، السبت 8:00-12:00).",
	},
	KeySlotTaken: {
		French:  "Cet horaire est déjà réservé. Veuillez choisir un autre.",
		English: "This time slot is already reserved. Please choose another.",
		Arabic:  "هذا الوقت محجوز بالفعل. يرجى اختيار وقت آخر.",
	},
	KeyUnknownService: {
		French:  "Le service sélectionné n'existe pas.",
		English: "The selected service does not exist.",
		Arabic:  "الخدمة المختارة غير موجودة.",
	},
	KeyBookingSuccess: {
		French:  "Votre rendez-vous a été réservé avec succès !",
		English: "Your appointment has been booked successfully!",
		Arabic:  "تم حفظ موعدك بنجاح!",
	},
	KeyBookingFailed: {
		French:  "Impossible de réserver le rendez-vous.",
		English: "Failed to book appointment.",
		Arabic:  "تعذر حجز الموعد.",
	},
	KeyContactMissingFields: {
		French:  "Le nom, l'email et le message sont obligatoires.",
		English: "Name, email, and message are required.",
		Arabic:  "الاسم والبريد الإلكتروني والرسالة مطلوبة.",
	},
	KeyContactFailed: {
		French:  "Impossible d'envoyer le formulaire de contact.",
		English: "Failed to submit contact form.",
		Arabic:  "تعذر إرسال نموذج الاتصال.",
	},
	KeyReviewMissingFields: {
		French:  "Le témoignage, l'auteur et la note sont obligatoires.",
		English: "Quote, author, and star rating are required.",
		Arabic:  "الشهادة والكاتب والتقييم مطلوبة.",
	},
	KeyReviewInvalidStar: {
		French:  "La note doit être comprise entre 1 et 5.",
		English: "Star rating must be between 1 and 5.",
		Arabic:  "يجب أن يكون التقييم بين 1 و 5.",
	},
	KeyReviewFailed: {
		French:  "Impossible d'envoyer l'avis.",
		English: "Failed to submit review.",
		Arabic:  "تعذر إرسال التقييم.",
	},
	KeyChatInvalidInput: {
		French:  "Format des messages invalide.",
		English: "Invalid input format.",
		Arabic:  "تنسيق الرسائل غير صالح.",
	},
	KeyChatUnavailable: {
		French:  "L'assistant est indisponible pour le moment.",
		English: "The assistant is currently unavailable.",
		Arabic:  "المساعد غير متاح حاليًا.",
	},
	KeyChatFailed: {
		French:  "L'assistant n'a pas pu répondre. Veuillez réessayer.",
		English: "The assistant could not answer. Please try again.",
		Arabic:  "تعذر على المساعد الرد. يرجى المحاولة مرة أخرى.",
	},
	KeyChatSystemPrompt: {
		French:  "Vous êtes un assistant utile pour %s. Soyez concis et serviable. Répondez en français.",
		English: "You are a helpful assistant for %s. Be concise and helpful. Answer in English.",
		Arabic:  "أنت مساعد مفيد لـ %s. كن موجزًا ومفيدًا. أجب باللغة العربية.",
	},
	KeyServicesTitle: {
		French:  "Nos services",
		English: "Our Services",
		Arabic:  "خدماتنا",
	},
	KeyServicesSubtitle: {
		French:  "Découvrez nos services de haute qualité",
		English: "Discover our high-quality services",
		Arabic:  "اكتشف خدماتنا عالية الجودة",
	},
	KeyTeamTitle: {
		French:  "Notre équipe",
		English: "Our Team",
		Arabic:  "فريقنا",
	},
	KeyTeamSubtitle: {
		French:  "Rencontrez les experts derrière notre succès",
		English: "Meet the experts behind our success",
		Arabic:  "تعرف على الخبراء وراء نجاحنا",
	},
	KeyPricingTitle: {
		French:  "Nos tarifs",
		English: "Our Pricing",
		Arabic:  "أسعارنا",
	},
	KeyPricingSubtitle: {
		French:  "Choisissez le plan qui convient à vos besoins",
		English: "Choose the plan that fits your needs",
		Arabic:  "اختر الخطة التي تناسب احتياجاتك",
	},
	KeyPricingMonthly: {
		French:  "Mensuel",
		English: "Monthly",
		Arabic:  "شهري",
	},
	KeyPricingYearly: {
		French:  "Annuel",
		English: "Yearly",
		Arabic:  "سنوي",
	},
	KeyPricingCTA: {
		French:  "Choisir ce plan",
		English: "Choose this plan",
		Arabic:  "اختر هذه الخطة",
	},
	KeyPricingDisclaimer: {
		French:  "Les prix peuvent changer. Contactez-nous pour plus de détails.",
		English: "Prices are subject to change. Contact us for more details.",
		Arabic:  "الأسعار قابلة للتغيير. تواصلوا معنا لمزيد من التفاصيل.",
	},
	KeyEquipmentTitle: {
		French:  "Nos équipements",
		English: "Our Equipment",
		Arabic:  "معداتنا",
	},
	KeyEquipmentSubtitle: {
		French:  "Découvrez notre gamme d'équipements de haute qualité",
		English: "Discover our range of high-quality equipment",
		Arabic:  "اكتشف مجموعتنا من المعدات عالية الجودة",
	},
	KeyTestimonialsTitle: {
		French:  "Témoignages",
		English: "Testimonials",
		Arabic:  "شهادات",
	},
	KeyTestimonialsSubtitle: {
		French:  "Ce que nos clients disent de nous",
		English: "What our clients say about us",
		Arabic:  "ماذا يقول عملاؤنا عنا",
	},
	KeyBookingEmailSubject: {
		French:  "Confirmation de votre rendez-vous",
		English: "Your appointment is confirmed",
		Arabic:  "تأكيد موعدك",
	},
	KeyBookingEmailBody: {
		French:  "Bonjour %s,\n\nVotre rendez-vous du %s à %s est confirmé.\n\n%s",
		English: "Hello %s,\n\nYour appointment on %s at %s is confirmed.\n\n%s",
		Arabic:  "مرحبًا %s،\n\nتم تأكيد موعدك يوم %s على الساعة %s.\n\n%s",
	},
	KeyContactEmailSubject: {
		French:  "Nouveau message de contact de %s",
		English: "New contact message from %s",
		Arabic:  "رسالة اتصال جديدة من %s",
	},
}
