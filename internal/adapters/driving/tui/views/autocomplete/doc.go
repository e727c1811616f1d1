// Package autocomplete provides the GitHub user and repository search box.
//
// All widget state lives in State and changes only through Reduce. View
// translates key, mouse and fetch messages into actions, schedules the
// debounced fetch when a reduction leaves a query pending, and renders the
// body chosen by Classify.
package autocomplete
