package logger

// Compose renders a single log line:
//
//	[<timestamp>] <identity>: <label>: <message>\n
func Compose(timestamp, identity, label, message string) string {
	return string(appendLine(nil, timestamp, identity, label, message, nil))
}

func appendLine(buf []byte, timestamp, identity, label, message string, attrs []byte) []byte {
	buf = append(buf, '[')
	buf = append(buf, timestamp...)
	buf = append(buf, "] "...)
	buf = append(buf, identity...)
	buf = append(buf, ": "...)
	buf = append(buf, label...)
	buf = append(buf, ": "...)
	buf = append(buf, message...)
	buf = append(buf, attrs...)
	return append(buf, '\n')
}
