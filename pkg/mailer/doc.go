// Package mailer delivers composed HTML documents. It is the transport the
// render core hands its output to, and deliberately knows nothing about
// blocks or templates, just an address, a subject and a body.
//
// Two implementations ship: a Postmark-backed sender for production and a
// filesystem sender for development that writes each email next to a JSON
// metadata file so it can be opened in a browser.
package mailer
