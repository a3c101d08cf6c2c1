// Package zenquotes fetches quotes from the ZenQuotes API.
//
// The API answers GET /?api=<mode> with a JSON array of quote objects:
//
//	[{"q": "Be yourself.", "a": "Oscar Wilde", "h": "<blockquote>..."}]
//
// Only the first element's quote text (q) and author (a) are used. Both are
// returned exactly as sent, so unicode and punctuation survive untouched.
package zenquotes
