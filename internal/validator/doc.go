// Package validator collects and reports the issues found while checking a
// data configuration document.
//
// An [Issue] names the dotted field it concerns ("inputs.europarl.size"),
// a message, and optionally the offending value. A [Result] aggregates
// issues; [Result.Err] turns blocking issues into a single error that
// matches errors.ErrInvalidConfig.
//
//	result := &validator.Result{}
//	if size <= 0 {
//		result.AddError("inputs.europarl.size", "must be a positive number", size)
//	}
//	if err := result.Err(); err != nil {
//		return err
//	}
package validator
