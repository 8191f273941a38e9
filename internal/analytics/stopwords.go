package analytics

// defaultStopWords is the stop-word set applied to word-frequency rankings.
// Filtering happens after the top-20 cut, so a stop word can displace a
// ranked word without promoting the next one.
var defaultStopWords = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
	"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
	"how", "man", "new", "now", "old", "see", "two", "who", "boy", "did",
	"its", "let", "put", "say", "she", "too", "use",
}
