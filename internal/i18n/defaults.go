package i18n

func defaultEnglishCatalog() Catalog {
	return Catalog{
		Locale: "en",
		Cues: CueCatalog{
			Availability: []string{
				"do you have",
				"do you sell",
				"have you got",
				"is there",
				"got any",
				"in stock",
				"available",
				"availability",
			},
			Ingredient: []string{
				"contains",
				"containing",
				"with ",
				"ingredient",
				"active ingredient",
				"what's in",
				"whats in",
				"made of",
			},
			Category: []string{
				"category",
				"categories",
				"show",
				"browse",
				"section",
				"aisle",
			},
			AllCategories: []string{
				"all categories",
				"what categories",
				"which categories",
				"list categories",
				"every category",
			},
			PriceCheap: []string{
				"cheap",
				"cheapest",
				"affordable",
				"budget",
				"inexpensive",
				"low price",
			},
			PricePremium: []string{
				"expensive",
				"premium",
				"high end",
				"luxury",
				"priciest",
			},
			Price: []string{
				"price",
				"prices",
				"cost",
				"how much",
			},
			Stock: []string{
				"stock",
				"inventory",
				"available",
				"what do you carry",
				"in store",
			},
			Find: []string{
				"find",
				"search",
				"looking for",
				"look for",
				"show me",
				"i need",
			},
			Recommend: []string{
				"recommend",
				"recommendation",
				"suggest",
				"suggestion",
				"what should i",
				"best seller",
			},
			Help: []string{
				"help",
				"what can you do",
				"how do you work",
				"how does this work",
			},
			StopWords: []string{
				"you", "your", "the", "for", "and", "have", "has", "got",
				"any", "are", "there", "what", "can", "sell", "does", "with",
				"please", "about", "something", "anything", "still", "how",
				"much", "cost", "price", "this", "that",
			},
			Scaffolding: []string{
				"what", "which", "contains", "contain", "containing",
				"products", "product", "ingredient", "ingredients", "have",
				"with", "made",
			},
		},
		Messages: MessageCatalog{
			InStock:        "Yes, we have %s in stock — %d available.",
			OutOfStock:     "%s is currently out of stock. %s Would you like me to suggest a similar product?",
			StockAvailable: "In stock: %d available",
			StockEmpty:     "Currently out of stock",
			Categories:     "We carry products in these categories: %s.",
			StockSummary:   "Right now %d products are in stock and %d are out of stock. In stock:",
			Recommend:      "Here are a few products our customers like:",
			CheapIntro:     "These are our most affordable options:",
			PremiumIntro:   "These are our premium options:",
			ConditionIntro: "For %s, customers often choose:",
			Help: "I can answer questions about our health and wellness range: " +
				"check whether a product is in stock, look items up by ingredient or category, " +
				"list everything we carry, filter by price, and suggest products for common complaints. " +
				"Ask me something like \"do you have magnesium?\" or \"what helps with a headache?\".",
			Advisory: "I could not find a confident answer to that. " +
				"For questions about symptoms, dosage, or interactions please consult a healthcare professional or pharmacist.",
			CatalogDown: "The product catalog is unavailable right now, so I cannot answer shop questions. Please try again later.",
		},
	}
}

func defaultHindiCatalog() Catalog {
	return Catalog{
		Locale: "hi",
		Cues: CueCatalog{
			Availability: []string{
				"क्या आपके पास",
				"आपके पास",
				"उपलब्ध",
				"स्टॉक में",
				"मिलेगा",
				"मिलेगी",
				"है क्या",
			},
			Ingredient: []string{
				"सामग्री",
				"घटक",
				"में क्या है",
				"युक्त",
			},
			Category: []string{
				"श्रेणी",
				"श्रेणियां",
				"श्रेणियाँ",
				"दिखाओ",
				"दिखाइए",
			},
			AllCategories: []string{
				"सभी श्रेणियां",
				"सभी श्रेणियाँ",
				"कौन कौन सी श्रेणियां",
			},
			PriceCheap: []string{
				"सस्ता",
				"सस्ती",
				"सस्ते",
				"किफायती",
			},
			PricePremium: []string{
				"महंगा",
				"महंगी",
				"महंगे",
				"प्रीमियम",
			},
			Price: []string{
				"कीमत",
				"दाम",
				"कितने का",
				"कितने की",
			},
			Stock: []string{
				"स्टॉक",
				"इन्वेंटरी",
				"भंडार",
			},
			Find: []string{
				"खोजो",
				"खोजें",
				"ढूंढो",
				"ढूँढो",
				"तलाश",
				"चाहिए",
			},
			Recommend: []string{
				"सुझाव",
				"सुझाओ",
				"सिफारिश",
				"क्या लूं",
			},
			Help: []string{
				"मदद",
				"सहायता",
				"तुम क्या कर सकते हो",
			},
			StopWords: []string{
				"क्या", "आपके", "पास", "में", "है", "हैं", "और", "के", "की",
				"का", "कोई", "मुझे", "चाहिए",
			},
			Scaffolding: []string{
				"क्या", "कौन", "सामग्री", "उत्पाद", "में",
			},
		},
		Messages: MessageCatalog{
			InStock:        "हाँ, %s स्टॉक में है — %d उपलब्ध।",
			OutOfStock:     "%s अभी स्टॉक में नहीं है। %s क्या मैं कोई मिलता-जुलता उत्पाद सुझाऊं?",
			StockAvailable: "स्टॉक में: %d उपलब्ध",
			StockEmpty:     "अभी स्टॉक में नहीं",
			Categories:     "हमारे पास इन श्रेणियों के उत्पाद हैं: %s।",
			StockSummary:   "अभी %d उत्पाद स्टॉक में हैं और %d स्टॉक में नहीं हैं। स्टॉक में:",
			Recommend:      "हमारे ग्राहकों के कुछ पसंदीदा उत्पाद:",
			CheapIntro:     "हमारे सबसे किफायती विकल्प:",
			PremiumIntro:   "हमारे प्रीमियम विकल्प:",
			ConditionIntro: "%s के लिए ग्राहक अक्सर ये लेते हैं:",
			Help: "मैं हमारी हेल्थ और वेलनेस रेंज के बारे में सवालों के जवाब दे सकता हूँ: " +
				"स्टॉक की जाँच, सामग्री या श्रेणी से खोज, कीमत के हिसाब से छँटाई, " +
				"और आम तकलीफ़ों के लिए उत्पाद सुझाना। जैसे पूछें: \"क्या आपके पास मैग्नीशियम है?\"",
			Advisory: "मुझे इसका भरोसेमंद जवाब नहीं मिला। " +
				"लक्षण, खुराक या दवाओं की परस्पर क्रिया के सवालों के लिए कृपया डॉक्टर या फार्मासिस्ट से सलाह लें।",
			CatalogDown: "उत्पाद कैटलॉग अभी उपलब्ध नहीं है, इसलिए मैं दुकान से जुड़े सवालों के जवाब नहीं दे सकता। कृपया बाद में कोशिश करें।",
		},
	}
}
