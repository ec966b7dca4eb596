// Package main provides the entry point for the textstat CLI.
//
// textstat computes word counts, token and bigram frequencies and
// word-cloud weights for text and documents (txt, md, html, pdf, docx).
//
// Usage:
//
//	textstat analyze report.pdf notes.docx
//	textstat analyze --text "O gato correu."
//	cat essay.txt | textstat analyze --format markdown
//
// See --help for all available options.
package main

func main() {
	Execute()
}
