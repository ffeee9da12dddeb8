package textproc

// StopWordSet holds function words excluded from token sequences.
// It is read-only after construction and safe for concurrent use.
type StopWordSet map[string]bool

// NewStopWordSet builds a StopWordSet from a word list.
func NewStopWordSet(words []string) StopWordSet {
	set := make(StopWordSet, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}

// Contains reports whether token is a stop word.
func (s StopWordSet) Contains(token string) bool {
	return s[token]
}

// DefaultStopWords returns the default Chinese function-word list.
func DefaultStopWords() []string {
	return []string{
		"的", "了", "在", "是", "我", "有", "和", "就", "不", "人", "都", "一",
		"一个", "上", "也", "很", "到", "说", "要", "去", "你", "会", "着",
		"没有", "看", "好", "自己", "这个", "那个", "他", "她", "它", "我们",
		"你们", "他们", "这", "那", "哪", "怎么", "什么", "为什么", "因为",
		"所以", "但是", "虽然", "如果", "然后", "可以", "应该", "需要",
	}
}
