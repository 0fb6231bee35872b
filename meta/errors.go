package meta

import "github.com/lyraproj/issue/issue"

// Error creates an instance of the Reported error with the given issue code and
// arguments
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, nil)
}

// Error2 creates an instance of the Reported error with the given location, issue
// code, and arguments
func Error2(location issue.Location, code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, location)
}

// Try calls the given function and converts a raised Reported into the returned
// error. Panics that are not a Reported resume unharmed
func Try(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				err = ri
			} else {
				panic(r)
			}
		}
	}()
	err = f()
	return
}
