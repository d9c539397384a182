// Package forms is the pure part of the login/register flow: it maps raw
// field strings to validated data or to a single rejection message, derives
// the live hints shown while the password fields are edited, and keeps the
// message board an adapter renders.
//
// Length rules count runes, so a character outside the BMP counts once where
// a browser's String.length would count it twice.
//
// Nothing here touches storage or I/O.
package forms
