package fritz2html

// Version is the current release of the converter.
const Version = "0.1.0"
