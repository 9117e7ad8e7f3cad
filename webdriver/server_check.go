package webdriver

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"
)

// WaitForServer polls the WebDriver server's status resource until it responds,
// printing progress to the given writer. Tests cannot run without a reachable
// server, so the harness calls this once at startup.
func WaitForServer(serverURL string, timeout time.Duration, output io.Writer) error {
	statusURL := serverURL + "/status"
	fmt.Fprintf(output, "Connecting to WebDriver server at %s", statusURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := http.DefaultClient.Get(statusURL)
		if err == nil {
			fmt.Fprintln(output)
			if resp.StatusCode != 200 {
				return fmt.Errorf("WebDriver server returned status code %d", resp.StatusCode)
			}
			if resp.Body != nil {
				data, _ := ioutil.ReadAll(resp.Body)
				resp.Body.Close()
				fmt.Fprintf(output, "Status query returned: %s\n", string(data))
			}
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}
