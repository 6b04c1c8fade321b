package platform

// Package platform provides OS-level helpers: application data and download
// directories, and opening files with the system default handler.
