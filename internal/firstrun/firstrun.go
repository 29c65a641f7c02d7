// Package firstrun tracks whether the application has ever started before,
// via a sentinel file whose mere existence is the signal.
package firstrun

import "os"

// Disclaimer is the notice the UI shows on the very first start.
const Disclaimer = `This software is free and open source, provided for learning and reference use only.
Use of this software is at your own risk; the authors accept no liability for any direct or indirect loss caused by it.
No warranty of any kind is provided, including merchantability or fitness for a particular purpose.
Users are responsible for backing up their own data; the authors are not liable for data loss or corruption.
The authors reserve the right to update, modify or discontinue the software without prior notice.
Continued use of the software constitutes acceptance of these terms.`

// Check reports whether this is the first run, creating the sentinel file
// when it is. The file's content is irrelevant; only existence counts.
func Check(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.WriteFile(path, []byte("initialized\n"), 0o644); err != nil {
		return true, err
	}
	return true, nil
}
