package quote

// fallbackQuotes are served when the quote service cannot be reached.
var fallbackQuotes = []Record{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Tags: []string{"inspirational", "success"}},
	{Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon", Tags: []string{"life", "inspirational"}},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Tags: []string{"inspirational", "motivational"}},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill", Tags: []string{"success", "motivational"}},
	{Text: "The journey of a thousand miles begins with one step.", Author: "Lao Tzu", Tags: []string{"inspirational", "life"}},
}

// Fallbacks returns a copy of the built-in fallback set.
func Fallbacks() []Record {
	out := make([]Record, len(fallbackQuotes))
	for i, r := range fallbackQuotes {
		out[i] = r.Clone()
	}
	return out
}
