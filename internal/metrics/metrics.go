// Package metrics exposes application metrics collectors.
package metrics

const namespace = "ledgermirror"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
