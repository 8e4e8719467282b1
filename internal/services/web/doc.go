// Package web serves the browser-facing MAN.3 trainer: the dashboard, the
// project workspace, the practice catalog, the decision simulation and the
// assessor chat.
package web
