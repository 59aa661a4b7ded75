// Package feedback turns submission results into the messages an admin screen
// shows: inline messages keyed by field id and page-level notices. Messages can
// be localised through a Translator keyed by "validation.<code>"; untranslated
// messages fall back to the validators' English defaults.
package feedback
