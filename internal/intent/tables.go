package intent

// The lookup tables below are curated, ordered, and immutable: the resolver
// scans them top to bottom and the first key contained in the query wins.
// Keys are lowercase; Hindi keys sit next to their English counterparts so
// one table serves both locales.

type ingredientEntry struct {
	Keys     []string
	Products []string
}

type categoryEntry struct {
	Keys     []string
	Category string
}

type conditionEntry struct {
	Keys     []string
	Products []string
}

func ingredientTable() []ingredientEntry {
	return []ingredientEntry{
		{Keys: []string{"magnesium", "मैग्नीशियम"}, Products: []string{"Magnesium Citrate 200mg"}},
		{Keys: []string{"paracetamol", "acetaminophen", "पैरासिटामोल"}, Products: []string{"Paracetamol 500mg"}},
		{Keys: []string{"ibuprofen", "आइबुप्रोफेन"}, Products: []string{"Ibuprofen 200mg"}},
		{Keys: []string{"melatonin", "मेलाटोनिन"}, Products: []string{"Melatonin 3mg"}},
		{Keys: []string{"vitamin c", "ascorbic", "विटामिन सी"}, Products: []string{"Vitamin C 1000mg"}},
		{Keys: []string{"vitamin d", "cholecalciferol", "विटामिन डी"}, Products: []string{"Vitamin D3 2000 IU"}},
		{Keys: []string{"omega", "fish oil", "मछली का तेल"}, Products: []string{"Omega-3 Fish Oil 1000mg"}},
		{Keys: []string{"zinc", "जिंक"}, Products: []string{"Zinc Lozenges"}},
		{Keys: []string{"collagen", "कोलेजन"}, Products: []string{"Collagen Beauty Powder"}},
		{Keys: []string{"valerian", "वेलेरियन"}, Products: []string{"Valerian Night Capsules"}},
		{Keys: []string{"probiotic", "lactobacillus", "प्रोबायोटिक"}, Products: []string{"Probiotic Complex 10B CFU"}},
		{Keys: []string{"glucosamine", "chondroitin", "ग्लूकोसामाइन"}, Products: []string{"Glucosamine & Chondroitin"}},
	}
}

func categoryTable() []categoryEntry {
	return []categoryEntry{
		{Keys: []string{"pain", "painkiller", "दर्द"}, Category: "Pain Relief"},
		{Keys: []string{"vitamin", "supplement", "विटामिन"}, Category: "Vitamins & Supplements"},
		{Keys: []string{"sleep", "नींद"}, Category: "Sleep & Relaxation"},
		{Keys: []string{"beauty", "skin", "सौंदर्य", "त्वचा"}, Category: "Beauty & Skin"},
		{Keys: []string{"digest", "gut", "पाचन"}, Category: "Digestive Health"},
		{Keys: []string{"heart", "हृदय", "दिल"}, Category: "Heart Health"},
		{Keys: []string{"joint", "bone", "जोड़", "हड्डी"}, Category: "Joint & Bone"},
	}
}

func conditionTable() []conditionEntry {
	return []conditionEntry{
		{Keys: []string{"headache", "migraine", "सिरदर्द"}, Products: []string{"Paracetamol 500mg", "Ibuprofen 200mg"}},
		{Keys: []string{"fever", "बुखार"}, Products: []string{"Paracetamol 500mg"}},
		{Keys: []string{"cold", "flu", "sore throat", "सर्दी", "जुकाम"}, Products: []string{"Vitamin C 1000mg", "Zinc Lozenges"}},
		{Keys: []string{"insomnia", "can't sleep", "cannot sleep", "अनिद्रा", "नींद नहीं"}, Products: []string{"Melatonin 3mg", "Valerian Night Capsules"}},
		{Keys: []string{"stress", "anxiety", "तनाव", "चिंता"}, Products: []string{"Magnesium Citrate 200mg", "Valerian Night Capsules"}},
		{Keys: []string{"tired", "fatigue", "low energy", "थकान"}, Products: []string{"Vitamin D3 2000 IU", "Magnesium Citrate 200mg"}},
		{Keys: []string{"immunity", "immune", "रोग प्रतिरोधक"}, Products: []string{"Vitamin C 1000mg", "Vitamin D3 2000 IU", "Zinc Lozenges"}},
		{Keys: []string{"digestion", "bloating", "constipation", "कब्ज", "पाचन"}, Products: []string{"Probiotic Complex 10B CFU"}},
		{Keys: []string{"cholesterol", "heart health", "कोलेस्ट्रॉल"}, Products: []string{"Omega-3 Fish Oil 1000mg"}},
		{Keys: []string{"joint pain", "arthritis", "गठिया", "जोड़ों का दर्द"}, Products: []string{"Glucosamine & Chondroitin", "Omega-3 Fish Oil 1000mg"}},
		{Keys: []string{"skin", "hair", "nails", "त्वचा", "बाल"}, Products: []string{"Collagen Beauty Powder", "Vitamin C 1000mg"}},
	}
}
