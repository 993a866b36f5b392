package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeChartRender      = "CHART_RENDER_FAILED"
	ErrCodeExportFailed     = "EXPORT_FAILED"
	ErrCodeOperationFailed  = "OPERATION_FAILED"
)

const (
	ErrMsgChartRender     = "could not render chart"
	ErrMsgExportFailed    = "could not export chart as PDF"
	ErrMsgOperationFailed = "operation failed"
)

var errorMessages = map[string]string{
	ErrCodeChartRender:     ErrMsgChartRender,
	ErrCodeExportFailed:    ErrMsgExportFailed,
	ErrCodeOperationFailed: ErrMsgOperationFailed,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}
