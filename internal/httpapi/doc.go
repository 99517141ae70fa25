// Package httpapi exposes the editing and rendering surface over HTTP.
//
// The API mirrors the editing client's needs: GET /menu/editor bootstraps
// the drag-and-drop editor, POST /menu/save replaces a scope's
// configuration wholesale, GET /menu/render/{zone} and GET /menu/zones
// serve the read side. Save responses always carry {message, messageType}
// so the client can surface the outcome without inspecting status codes.
package httpapi
