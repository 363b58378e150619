// Package ui is the Bubble Tea front end for the serial monitor.
//
// Core abstractions:
//   - App: root model holding the session/pane controller, serial transport,
//     menu state, and overlay stack
//   - View: a modal or major UI region with its own model, update, view (Elm-style)
//   - Overlay: modal views stacked above the main screen with a dismiss key
//   - Areas: the screen regions computed fresh from the current size each frame,
//     shared by rendering and mouse hit-testing
//
// Input precedence, top to bottom: overlay stack, menu bar, global keys,
// then the focused pane's session.
package ui
