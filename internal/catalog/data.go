package catalog

// Built-in study content. Order matters: it is the presentation order
// for study sessions and the key order reported to callers.

var hiraganaData = []Character{
	{Character: "あ", Romaji: "a"},
	{Character: "い", Romaji: "i"},
	{Character: "う", Romaji: "u"},
	{Character: "え", Romaji: "e"},
	{Character: "お", Romaji: "o"},
	{Character: "か", Romaji: "ka"},
	{Character: "き", Romaji: "ki"},
	{Character: "く", Romaji: "ku"},
	{Character: "け", Romaji: "ke"},
	{Character: "こ", Romaji: "ko"},
	{Character: "さ", Romaji: "sa"},
	{Character: "し", Romaji: "shi"},
	{Character: "す", Romaji: "su"},
	{Character: "せ", Romaji: "se"},
	{Character: "そ", Romaji: "so"},
	{Character: "た", Romaji: "ta"},
	{Character: "ち", Romaji: "chi"},
	{Character: "つ", Romaji: "tsu"},
	{Character: "て", Romaji: "te"},
	{Character: "と", Romaji: "to"},
	{Character: "な", Romaji: "na"},
	{Character: "に", Romaji: "ni"},
	{Character: "ぬ", Romaji: "nu"},
	{Character: "ね", Romaji: "ne"},
	{Character: "の", Romaji: "no"},
	{Character: "は", Romaji: "ha"},
	{Character: "ひ", Romaji: "hi"},
	{Character: "ふ", Romaji: "fu"},
	{Character: "へ", Romaji: "he"},
	{Character: "ほ", Romaji: "ho"},
	{Character: "ま", Romaji: "ma"},
	{Character: "み", Romaji: "mi"},
	{Character: "む", Romaji: "mu"},
	{Character: "め", Romaji: "me"},
	{Character: "も", Romaji: "mo"},
	{Character: "や", Romaji: "ya"},
	{Character: "ゆ", Romaji: "yu"},
	{Character: "よ", Romaji: "yo"},
	{Character: "ら", Romaji: "ra"},
	{Character: "り", Romaji: "ri"},
	{Character: "る", Romaji: "ru"},
	{Character: "れ", Romaji: "re"},
	{Character: "ろ", Romaji: "ro"},
	{Character: "わ", Romaji: "wa"},
	{Character: "ん", Romaji: "n"},
}

var katakanaData = []Character{
	{Character: "ア", Romaji: "a"},
	{Character: "イ", Romaji: "i"},
	{Character: "ウ", Romaji: "u"},
	{Character: "エ", Romaji: "e"},
	{Character: "オ", Romaji: "o"},
	{Character: "カ", Romaji: "ka"},
	{Character: "キ", Romaji: "ki"},
	{Character: "ク", Romaji: "ku"},
	{Character: "ケ", Romaji: "ke"},
	{Character: "コ", Romaji: "ko"},
	{Character: "サ", Romaji: "sa"},
	{Character: "シ", Romaji: "shi"},
	{Character: "ス", Romaji: "su"},
	{Character: "セ", Romaji: "se"},
	{Character: "ソ", Romaji: "so"},
	{Character: "タ", Romaji: "ta"},
	{Character: "チ", Romaji: "chi"},
	{Character: "ツ", Romaji: "tsu"},
	{Character: "テ", Romaji: "te"},
	{Character: "ト", Romaji: "to"},
	{Character: "ナ", Romaji: "na"},
	{Character: "ニ", Romaji: "ni"},
	{Character: "ヌ", Romaji: "nu"},
	{Character: "ネ", Romaji: "ne"},
	{Character: "ノ", Romaji: "no"},
	{Character: "ハ", Romaji: "ha"},
	{Character: "ヒ", Romaji: "hi"},
	{Character: "フ", Romaji: "fu"},
	{Character: "ヘ", Romaji: "he"},
	{Character: "ホ", Romaji: "ho"},
	{Character: "マ", Romaji: "ma"},
	{Character: "ミ", Romaji: "mi"},
	{Character: "ム", Romaji: "mu"},
	{Character: "メ", Romaji: "me"},
	{Character: "モ", Romaji: "mo"},
	{Character: "ヤ", Romaji: "ya"},
	{Character: "ユ", Romaji: "yu"},
	{Character: "ヨ", Romaji: "yo"},
	{Character: "ラ", Romaji: "ra"},
	{Character: "リ", Romaji: "ri"},
	{Character: "ル", Romaji: "ru"},
	{Character: "レ", Romaji: "re"},
	{Character: "ロ", Romaji: "ro"},
	{Character: "ワ", Romaji: "wa"},
	{Character: "ン", Romaji: "n"},
}

var kanjiData = []KanjiEntry{
	{
		Character: "人",
		Romaji:    "hito",
		Meaning:   "person",
		Kunyomi:   []string{"hito"},
		Onyomi:    []string{"jin", "nin"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"人間 (ningen) - human", "日本人 (nihonjin) - Japanese person"},
	},
	{
		Character: "日",
		Romaji:    "hi",
		Meaning:   "sun, day",
		Kunyomi:   []string{"hi"},
		Onyomi:    []string{"nichi"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"今日 (kyou) - today", "日本 (nihon) - Japan"},
	},
	{
		Character: "本",
		Romaji:    "hon",
		Meaning:   "book, main",
		Kunyomi:   []string{"moto"},
		Onyomi:    []string{"hon"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"本 (hon) - book", "日本 (nihon) - Japan"},
	},
	{
		Character: "水",
		Romaji:    "mizu",
		Meaning:   "water",
		Kunyomi:   []string{"mizu"},
		Onyomi:    []string{"sui"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"水 (mizu) - water", "水曜日 (suiyoubi) - Wednesday"},
	},
	{
		Character: "火",
		Romaji:    "hi",
		Meaning:   "fire",
		Kunyomi:   []string{"hi"},
		Onyomi:    []string{"ka"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"火 (hi) - fire", "火曜日 (kayoubi) - Tuesday"},
	},
	{
		Character: "木",
		Romaji:    "ki",
		Meaning:   "tree, wood",
		Kunyomi:   []string{"ki"},
		Onyomi:    []string{"moku", "boku"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"木 (ki) - tree", "木曜日 (mokuyoubi) - Thursday"},
	},
	{
		Character: "金",
		Romaji:    "kane",
		Meaning:   "gold, money",
		Kunyomi:   []string{"kane"},
		Onyomi:    []string{"kin"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"お金 (okane) - money", "金曜日 (kinyoubi) - Friday"},
	},
	{
		Character: "土",
		Romaji:    "tsuchi",
		Meaning:   "earth, soil",
		Kunyomi:   []string{"tsuchi"},
		Onyomi:    []string{"do"},
		Grade:     1,
		JLPT:      5,
		Examples:  []string{"土 (tsuchi) - soil", "土曜日 (doyoubi) - Saturday"},
	},
}

var vocabularyData = []VocabularyEntry{
	{Japanese: "こんにちは", Romaji: "konnichiwa", English: "hello", Category: "greetings", JLPT: 5},
	{Japanese: "ありがとう", Romaji: "arigatou", English: "thank you", Category: "greetings", JLPT: 5},
	{Japanese: "はじめまして", Romaji: "hajimemashite", English: "nice to meet you", Category: "greetings", JLPT: 5},
	{Japanese: "すみません", Romaji: "sumimasen", English: "excuse me", Category: "greetings", JLPT: 5},
	{Japanese: "はい", Romaji: "hai", English: "yes", Category: "basic", JLPT: 5},
	{Japanese: "いいえ", Romaji: "iie", English: "no", Category: "basic", JLPT: 5},
	{Japanese: "わたし", Romaji: "watashi", English: "I, me", Category: "pronouns", JLPT: 5},
	{Japanese: "あなた", Romaji: "anata", English: "you", Category: "pronouns", JLPT: 5},
	{Japanese: "これ", Romaji: "kore", English: "this", Category: "demonstratives", JLPT: 5},
	{Japanese: "それ", Romaji: "sore", English: "that", Category: "demonstratives", JLPT: 5},
	{Japanese: "あれ", Romaji: "are", English: "that over there", Category: "demonstratives", JLPT: 5},
	{Japanese: "どれ", Romaji: "dore", English: "which", Category: "demonstratives", JLPT: 5},
	{Japanese: "いち", Romaji: "ichi", English: "one", Category: "numbers", JLPT: 5},
	{Japanese: "に", Romaji: "ni", English: "two", Category: "numbers", JLPT: 5},
	{Japanese: "さん", Romaji: "san", English: "three", Category: "numbers", JLPT: 5},
	{Japanese: "よん", Romaji: "yon", English: "four", Category: "numbers", JLPT: 5},
	{Japanese: "ご", Romaji: "go", English: "five", Category: "numbers", JLPT: 5},
	{Japanese: "がっこう", Romaji: "gakkou", English: "school", Category: "places", JLPT: 5},
	{Japanese: "いえ", Romaji: "ie", English: "house", Category: "places", JLPT: 5},
	{Japanese: "みず", Romaji: "mizu", English: "water", Category: "food", JLPT: 5},
}

var grammarData = []GrammarPoint{
	{
		Pattern:     "は (wa)",
		Meaning:     "Topic marker",
		Explanation: "は marks the topic of the sentence. It is pronounced \"wa\" when used as a particle.",
		Level:       "beginner",
	},
	{
		Pattern:     "です (desu)",
		Meaning:     "Polite copula",
		Explanation: "です is used to make statements polite. It means \"to be\" in English.",
		Level:       "beginner",
	},
	{
		Pattern:     "を (wo/o)",
		Meaning:     "Direct object marker",
		Explanation: "を marks the direct object of a verb. It is pronounced \"o\".",
		Level:       "beginner",
	},
}
