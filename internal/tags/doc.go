// Package tags checks that skill folder names start with an approved tag.
//
// A skill folder is tagged when its name has the form "<tag>-<rest>" and
// <tag> is in the allowed set (op, sec, fe and qa by default). Anything else
// is untagged, also called general. Untagged skills are reported but only
// fail the check in strict mode.
//
// # Basic Usage
//
//	report, err := tags.Scan(skillsDir, tags.DefaultPolicy())
//	if err != nil {
//		return err
//	}
//	_ = tags.NewReporter(os.Stdout, tags.FormatText).Report(report, strict)
//	return report.Err(strict)
package tags
