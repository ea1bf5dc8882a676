package kana

// The full gojūon table plus voiced (dakuten) and semi-voiced (handakuten)
// rows. Order matters: analytics views render the catalog in this order.
var rows = []Row{
	{
		Name: "あ行",
		Characters: []Character{
			{Hiragana: "あ", Katakana: "ア", Romaji: "a", Pronunciation: "a"},
			{Hiragana: "い", Katakana: "イ", Romaji: "i", Pronunciation: "i"},
			{Hiragana: "う", Katakana: "ウ", Romaji: "u", Pronunciation: "u"},
			{Hiragana: "え", Katakana: "エ", Romaji: "e", Pronunciation: "e"},
			{Hiragana: "お", Katakana: "オ", Romaji: "o", Pronunciation: "o"},
		},
	},
	{
		Name: "か行",
		Characters: []Character{
			{Hiragana: "か", Katakana: "カ", Romaji: "ka", Pronunciation: "ka"},
			{Hiragana: "き", Katakana: "キ", Romaji: "ki", Pronunciation: "ki"},
			{Hiragana: "く", Katakana: "ク", Romaji: "ku", Pronunciation: "ku"},
			{Hiragana: "け", Katakana: "ケ", Romaji: "ke", Pronunciation: "ke"},
			{Hiragana: "こ", Katakana: "コ", Romaji: "ko", Pronunciation: "ko"},
		},
	},
	{
		Name: "さ行",
		Characters: []Character{
			{Hiragana: "さ", Katakana: "サ", Romaji: "sa", Pronunciation: "sa"},
			{Hiragana: "し", Katakana: "シ", Romaji: "shi", Pronunciation: "shi"},
			{Hiragana: "す", Katakana: "ス", Romaji: "su", Pronunciation: "su"},
			{Hiragana: "せ", Katakana: "セ", Romaji: "se", Pronunciation: "se"},
			{Hiragana: "そ", Katakana: "ソ", Romaji: "so", Pronunciation: "so"},
		},
	},
	{
		Name: "た行",
		Characters: []Character{
			{Hiragana: "た", Katakana: "タ", Romaji: "ta", Pronunciation: "ta"},
			{Hiragana: "ち", Katakana: "チ", Romaji: "chi", Pronunciation: "chi"},
			{Hiragana: "つ", Katakana: "ツ", Romaji: "tsu", Pronunciation: "tsu"},
			{Hiragana: "て", Katakana: "テ", Romaji: "te", Pronunciation: "te"},
			{Hiragana: "と", Katakana: "ト", Romaji: "to", Pronunciation: "to"},
		},
	},
	{
		Name: "な行",
		Characters: []Character{
			{Hiragana: "な", Katakana: "ナ", Romaji: "na", Pronunciation: "na"},
			{Hiragana: "に", Katakana: "ニ", Romaji: "ni", Pronunciation: "ni"},
			{Hiragana: "ぬ", Katakana: "ヌ", Romaji: "nu", Pronunciation: "nu"},
			{Hiragana: "ね", Katakana: "ネ", Romaji: "ne", Pronunciation: "ne"},
			{Hiragana: "の", Katakana: "ノ", Romaji: "no", Pronunciation: "no"},
		},
	},
	{
		Name: "は行",
		Characters: []Character{
			{Hiragana: "は", Katakana: "ハ", Romaji: "ha", Pronunciation: "ha"},
			{Hiragana: "ひ", Katakana: "ヒ", Romaji: "hi", Pronunciation: "hi"},
			{Hiragana: "ふ", Katakana: "フ", Romaji: "fu", Pronunciation: "fu"},
			{Hiragana: "へ", Katakana: "ヘ", Romaji: "he", Pronunciation: "he"},
			{Hiragana: "ほ", Katakana: "ホ", Romaji: "ho", Pronunciation: "ho"},
		},
	},
	{
		Name: "ま行",
		Characters: []Character{
			{Hiragana: "ま", Katakana: "マ", Romaji: "ma", Pronunciation: "ma"},
			{Hiragana: "み", Katakana: "ミ", Romaji: "mi", Pronunciation: "mi"},
			{Hiragana: "む", Katakana: "ム", Romaji: "mu", Pronunciation: "mu"},
			{Hiragana: "め", Katakana: "メ", Romaji: "me", Pronunciation: "me"},
			{Hiragana: "も", Katakana: "モ", Romaji: "mo", Pronunciation: "mo"},
		},
	},
	{
		Name: "や行",
		Characters: []Character{
			{Hiragana: "や", Katakana: "ヤ", Romaji: "ya", Pronunciation: "ya"},
			{Hiragana: "ゆ", Katakana: "ユ", Romaji: "yu", Pronunciation: "yu"},
			{Hiragana: "よ", Katakana: "ヨ", Romaji: "yo", Pronunciation: "yo"},
		},
	},
	{
		Name: "ら行",
		Characters: []Character{
			{Hiragana: "ら", Katakana: "ラ", Romaji: "ra", Pronunciation: "ra"},
			{Hiragana: "り", Katakana: "リ", Romaji: "ri", Pronunciation: "ri"},
			{Hiragana: "る", Katakana: "ル", Romaji: "ru", Pronunciation: "ru"},
			{Hiragana: "れ", Katakana: "レ", Romaji: "re", Pronunciation: "re"},
			{Hiragana: "ろ", Katakana: "ロ", Romaji: "ro", Pronunciation: "ro"},
		},
	},
	{
		Name: "わ行",
		Characters: []Character{
			{Hiragana: "わ", Katakana: "ワ", Romaji: "wa", Pronunciation: "wa"},
			{Hiragana: "を", Katakana: "ヲ", Romaji: "wo", Pronunciation: "wo"},
			{Hiragana: "ん", Katakana: "ン", Romaji: "n", Pronunciation: "n"},
		},
	},
	{
		Name: "が行",
		Characters: []Character{
			{Hiragana: "が", Katakana: "ガ", Romaji: "ga", Pronunciation: "ga"},
			{Hiragana: "ぎ", Katakana: "ギ", Romaji: "gi", Pronunciation: "gi"},
			{Hiragana: "ぐ", Katakana: "グ", Romaji: "gu", Pronunciation: "gu"},
			{Hiragana: "げ", Katakana: "ゲ", Romaji: "ge", Pronunciation: "ge"},
			{Hiragana: "ご", Katakana: "ゴ", Romaji: "go", Pronunciation: "go"},
		},
	},
	{
		Name: "ざ行",
		Characters: []Character{
			{Hiragana: "ざ", Katakana: "ザ", Romaji: "za", Pronunciation: "za"},
			{Hiragana: "じ", Katakana: "ジ", Romaji: "ji", Pronunciation: "ji"},
			{Hiragana: "ず", Katakana: "ズ", Romaji: "zu", Pronunciation: "zu"},
			{Hiragana: "ぜ", Katakana: "ゼ", Romaji: "ze", Pronunciation: "ze"},
			{Hiragana: "ぞ", Katakana: "ゾ", Romaji: "zo", Pronunciation: "zo"},
		},
	},
	{
		Name: "だ行",
		Characters: []Character{
			{Hiragana: "だ", Katakana: "ダ", Romaji: "da", Pronunciation: "da"},
			{Hiragana: "ぢ", Katakana: "ヂ", Romaji: "ji", Pronunciation: "ji"},
			{Hiragana: "づ", Katakana: "ヅ", Romaji: "zu", Pronunciation: "zu"},
			{Hiragana: "で", Katakana: "デ", Romaji: "de", Pronunciation: "de"},
			{Hiragana: "ど", Katakana: "ド", Romaji: "do", Pronunciation: "do"},
		},
	},
	{
		Name: "ば行",
		Characters: []Character{
			{Hiragana: "ば", Katakana: "バ", Romaji: "ba", Pronunciation: "ba"},
			{Hiragana: "び", Katakana: "ビ", Romaji: "bi", Pronunciation: "bi"},
			{Hiragana: "ぶ", Katakana: "ブ", Romaji: "bu", Pronunciation: "bu"},
			{Hiragana: "べ", Katakana: "ベ", Romaji: "be", Pronunciation: "be"},
			{Hiragana: "ぼ", Katakana: "ボ", Romaji: "bo", Pronunciation: "bo"},
		},
	},
	{
		Name: "ぱ行",
		Characters: []Character{
			{Hiragana: "ぱ", Katakana: "パ", Romaji: "pa", Pronunciation: "pa"},
			{Hiragana: "ぴ", Katakana: "ピ", Romaji: "pi", Pronunciation: "pi"},
			{Hiragana: "ぷ", Katakana: "プ", Romaji: "pu", Pronunciation: "pu"},
			{Hiragana: "ぺ", Katakana: "ペ", Romaji: "pe", Pronunciation: "pe"},
			{Hiragana: "ぽ", Katakana: "ポ", Romaji: "po", Pronunciation: "po"},
		},
	},
}
