// Package webcontent prepares remote content for use in Prediction Guard
// requests: [Fetch] converts a web page to markdown suitable as chat or
// factuality context, and [FetchImage] downloads an image and encodes it as
// the base64 data URI the vision chat endpoint expects.
package webcontent
