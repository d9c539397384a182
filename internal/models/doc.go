// Package models defines the records the form core persists: registered
// users and the single current-session marker.
package models
