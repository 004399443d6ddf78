// Package preprocess analyzes and cleans raw HTML using pattern
// matching alone, ahead of a full structural parser. It shrinks and
// declutters input that may be malformed or oversized: tag removal,
// attribute stripping, comment removal, class- and id-scoped element
// removal, entity decoding and whitespace normalization, plus a
// read-only analyzer that reports tag, class, id, heading and
// paragraph statistics.
//
// No DOM is ever built, and output is not guaranteed to be well
// formed. Pattern matching cannot pair arbitrarily nested same-named
// tags: when a removal target contains a nested element with the same
// tag name, the span closes at the first matching close tag, so the
// whole nested structure is removed together rather than selectively
// preserved.
//
// Typical use:
//
//	p, err := preprocess.New(ctx, preprocess.WithHTML(raw))
//	if err != nil {
//		return err
//	}
//	cleaned := p.
//		RemoveScriptsAndStyles().
//		RemoveByClass("ad", "popup").
//		DecodeEntities().
//		NormalizeWhitespace().
//		Cleaned()
package preprocess
