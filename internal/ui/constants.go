package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 220

	ProgressMinWidth float32 = 260
)

// Fixed UI strings
const (
	TextAppTitle       = "JM Comic Downloader"
	TextSavePathGroup  = "Save path"
	TextDownloadGroup  = "Download"
	TextAlbumIDLabel   = "Album ID:"
	TextAlbumIDHint    = "e.g. 422866"
	TextBrowse         = "Browse"
	TextStartDownload  = "Start download"
	TextFileMenu       = "File"
	TextOpenSaveFolder = "Open save folder"
	TextOpenConfigDir  = "Open config folder"

	TitleError    = "Error"
	TitleProgress = "Download progress"
	TitleDone     = "Done"
	TitleBusy     = "Busy"

	MsgInvalidAlbumID = "Album ID must contain digits only"
	MsgProgress       = "Downloading, please wait..."
	MsgBusy           = "A download is already running, wait for it to finish."
	MsgSaveFailed     = "Failed to save settings:\n%s"
	MsgConfigFailed   = "Failed to load configuration:\n%s"
	MsgDone           = "Album %s downloaded!\nSave path: %s"
	MsgOpenFailed     = "Could not open folder:\n%s"

	// MsgDownloadFailed is followed by the fixed list of likely causes.
	MsgDownloadFailed = "Download failed:\n%s\n\n" +
		"Possible causes:\n" +
		"1. Wrong album ID\n" +
		"2. Network connection problem\n" +
		"3. Proxy settings need checking"

	TextOpenFolder = "Open folder"
	TextClose      = "Close"
)
