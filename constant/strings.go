package constant

// Request context keys
const (
	RequestIDKey = "request_id"
)

// HTTP header names
const (
	HeaderRequestID = "X-Request-ID"
)

// Configuration sections
const (
	SectionQRCode  = "QRCODE"
	SectionGeneral = "GENERAL"
	SectionWindow  = "WINDOW"
)

// Option names under the QRCODE section
const (
	OptPrefixURL     = "prefix_url"
	OptForeground    = "foreground"
	OptBackground    = "background"
	OptSideText      = "side_text"
	OptOffset        = "offset"
	OptWaitLocation  = "wait_location"
	OptPrintLocation = "print_location"
	OptSave          = "save"
	OptSuffix        = "suffix"
	OptExt           = "ext"
	OptSavePath      = "save_path"
)

// Options read from host-owned sections
const (
	OptDirectory = "directory"
	OptTextColor = "text_color"
)

// Template placeholders accepted by prefix_url
const (
	VarPicture = "picture"
	VarCount   = "count"
	VarURL     = "url"
)

// Defaults for saved QR files
const (
	DefaultSuffix = "_qrcode"
	DefaultExt    = "png"
)

// Metadata key recorded next to a picture entry
const (
	MetaQRCodePath = "qrcode_path"
)

// Function/Context names
const (
	// Plugin context names
	CtxPlugin     = "plugin"
	CtxConfigure  = "Configure"
	CtxStartup    = "Startup"
	CtxProcessing = "ProcessingDo"
	CtxWaitEnter  = "WaitEnter"
	CtxWaitDo     = "WaitDo"
	CtxPrintEnter = "PrintEnter"

	// Infrastructure context names
	CtxQRCode   = "qrcode"
	CtxStorage  = "storage"
	CtxMetadata = "metadata"
	CtxAttach   = "Attach"
	CtxLookup   = "Lookup"
	CtxClose    = "Close"
	CtxAPI      = "api"

	// General context names
	CtxRouter = "Router"
	CtxMain   = "Main"
	CtxBooth  = "booth"
)

// Data field keys
const (
	// Plugin data fields
	DataSection  = "section"
	DataLocation = "location"
	DataState    = "state"
	DataText     = "text"
	DataPicture  = "picture"
	DataCount    = "count"
	DataRect     = "rect"

	// Storage data fields
	DataPath      = "path"
	DataDirectory = "directory"
	DataExt       = "ext"

	// Metadata data fields
	DataKey    = "key"
	DataValue  = "value"
	DataDBPath = "db_path"

	// API data fields
	DataMethod      = "method"
	DataStatus      = "status"
	DataLatency     = "latency"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataPort        = "port"
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrUnknownLocation  = "unknown QR code location"
	ErrGeneratorMissing = "QR code generator is not available"
	ErrEmptyPicturePath = "picture path cannot be empty"
	ErrPictureNotFound  = "picture not found"
	ErrMetadataNotFound = "no metadata recorded for picture"
)

// API routes
const (
	RoutePicture         = "/pictures/{name}"
	RouteQRCode          = "/qrcodes/{name}"
	RoutePictureMetadata = "/api/pictures/{name}/metadata"
	RouteHealthcheck     = "/health"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Message constants for application
const (
	MsgApplicationStarting  = "Application starting"
	MsgFailedToInitMetadata = "Failed to initialize metadata store"
	MsgServerStarting       = "Server starting"
	MsgServerFailedToStart  = "Server failed to start"
	MsgServerShuttingDown   = "Server shutting down"
	MsgServerShutdownError  = "Error during server shutdown"
	MsgServerStopped        = "Server stopped"
	MsgRequestReceived      = "Request received"
	MsgRequestCompleted     = "Request completed"
	MsgSettingUpRoutes      = "Setting up API routes"
	MsgHealthcheckRequest   = "Handling healthcheck request"
	MsgHealthy              = "Healthy"
	MsgQRGenerated          = "QR code generated"
	MsgQRSaved              = "QR image saved"
	MsgQRSaveFallback       = "QR image saved via RGBA fallback"
	MsgProcessingFailed     = "Error while generating or saving QR image"
	MsgCaptureCycle         = "Running capture cycle"
)
