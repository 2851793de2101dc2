package constant

// Plugin error codes
const (
	// Configuration errors (0xx)
	ErrCodeUnknownLocation = "QRC001"

	// Generation errors (1xx)
	ErrCodeGeneratorMissing = "QRC101"
	ErrCodeTemplateFormat   = "QRC102"
	ErrCodeGenerateFailure  = "QRC103"
	ErrCodeConvertFailure   = "QRC104"
)

// Storage error codes
const (
	ErrCodeResolveDirectory = "STG001"
	ErrCodeCreateDirectory  = "STG002"
	ErrCodeEncodeImage      = "STG003"
	ErrCodeWriteFile        = "STG004"
)

// Metadata store error codes
const (
	ErrCodeMetaOpen    = "MET001"
	ErrCodeMetaMigrate = "MET002"
	ErrCodeMetaAttach  = "MET101"
	ErrCodeMetaLookup  = "MET201"
	ErrCodeMetaClose   = "MET301"

	// General metadata store errors (5xx)
	ErrCodeMetaGeneral = "MET500"
)

// Application error codes
const (
	ErrCodeAppMetaInit       = "APP001"
	ErrCodeAppServerStart    = "APP002"
	ErrCodeAppServerShutdown = "APP003"
	ErrCodeAppCycle          = "APP004"
)

// API error codes
const (
	ErrCodeAPIPictureNotFound = "API001"
	ErrCodeAPIMetadataLookup  = "API002"
	ErrCodeAPIBadName         = "API003"
)

// Error types for categorization
const (
	// Plugin error types
	ErrTypeValidation = "validation"
	ErrTypeGeneration = "generation"
	ErrTypeConversion = "conversion"
	ErrTypeStorage    = "storage"
	ErrTypeMetadata   = "metadata"

	// Infrastructure error types
	ErrTypeDB  = "db"
	ErrTypeAPI = "api"
	ErrTypeApp = "application"
)
