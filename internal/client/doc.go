// Package client is a headless model of the upload page and the two handlers
// that drive it.
//
// A Page owns a fixed set of element handles. PreviewSelector listens for
// change events on the animal radio group and points the preview image at
// /static/img/<value>.jpg. UploadSubmitter listens for submit events on the
// upload form, checks the chosen file locally, posts it to /upload and renders
// the JSON reply into the results table, or shows an error.
//
// Handlers are registered with Element.AddEventListener and run synchronously
// inside Element.Dispatch. The only blocking point is the HTTP round trip in
// UploadSubmitter.Submit.
package client
