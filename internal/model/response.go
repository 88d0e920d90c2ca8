package model

// Response is the envelope every request resolves to, success or not.
// Exactly one of Data and Msg is set.
type Response struct {
	Success bool         `json:"success"`
	Data    *APIResponse `json:"data,omitempty"`
	Msg     string       `json:"msg,omitempty"`
}

func BuildSuccess(data *APIResponse) Response {
	return Response{Success: true, Data: data}
}

func BuildFailure(msg string) Response {
	return Response{Success: false, Msg: msg}
}
