package sfnt

import "go.uber.org/zap"

// depState reports what is currently known about a prerequisite table's
// load: whether it has been attempted at all, and if so, whether it
// succeeded. A table whose tag never appeared in the directory is treated
// as attempted-and-failed immediately (there is no pass in which it could
// ever succeed); a table whose tag is present but whose loader hasn't run
// yet is not-yet-attempted, so the caller should defer to a later pass.
func depState(present LoadFlags, dep LoadFlags, result Result, ok bool) (attempted, succeeded bool) {
	if present&dep == 0 {
		return true, false
	}
	if result == ResultFailedFindTable {
		return false, false
	}
	return true, ok
}

// resolveAndLoad drives every requested table's loader to completion,
// alternating passes over the directory until a full pass performs no
// work (spec.md §4.5). A table with no prerequisites loads the first time
// it's visited. A table whose prerequisite's tag never appeared in the
// file fails immediately with a specific "X requires Y" code; one whose
// prerequisite's tag is present but not yet resolved is deferred to a
// later pass; one whose prerequisite definitively failed also fails
// immediately with the "X requires Y" code, since waiting longer cannot
// help.
func resolveAndLoad(f *Font, data []byte, flags LoadFlags, present LoadFlags, log *zap.Logger) {
	pass := 0
	for {
		pass++
		progressed := false
		for i := range f.Directory.Records {
			rec := f.Directory.Records[i]
			flag := loadFlagForTag(rec.TagUint)
			if flag == 0 || flags&flag == 0 {
				continue
			}
			if stepTable(f, data, rec, flag, present, log) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	log.Debug("dependency resolution complete", zap.Int("passes", pass))
}

// stepTable attempts to load one table if it is untouched and its
// dependencies allow it. It returns true if it performed work (a load
// attempt, or a definitive dependency-failure verdict) that should
// trigger another pass.
func stepTable(f *Font, data []byte, rec TableRecord, flag LoadFlags, present LoadFlags, log *zap.Logger) bool {
	switch flag {
	case LoadMaxp:
		if f.MaxpResult != ResultFailedFindTable {
			return false
		}
		f.Maxp, f.MaxpResult = loadMaxp(rec.bytes(data))
		logTableResult(log, "maxp", f.MaxpResult)
		return true

	case LoadHead:
		if f.HeadResult != ResultFailedFindTable {
			return false
		}
		f.Head, f.HeadResult = loadHead(rec.bytes(data))
		logTableResult(log, "head", f.HeadResult)
		return true

	case LoadHhea:
		if f.HheaResult != ResultFailedFindTable {
			return false
		}
		maxpDone, maxpOK := depState(present, LoadMaxp, f.MaxpResult, f.Maxp != nil)
		if !maxpDone {
			return false
		}
		if !maxpOK {
			f.HheaResult = ResultHheaRequiresMaxp
			logTableResult(log, "hhea", f.HheaResult)
			return true
		}
		f.Hhea, f.HheaResult = loadHhea(rec.bytes(data), f.Maxp)
		logTableResult(log, "hhea", f.HheaResult)
		return true

	case LoadHmtx:
		if f.HmtxResult != ResultFailedFindTable {
			return false
		}
		maxpDone, maxpOK := depState(present, LoadMaxp, f.MaxpResult, f.Maxp != nil)
		hheaDone, hheaOK := depState(present, LoadHhea, f.HheaResult, f.Hhea != nil)
		if !maxpDone || !hheaDone {
			return false
		}
		if !maxpOK {
			f.HmtxResult = ResultHmtxRequiresMaxp
			logTableResult(log, "hmtx", f.HmtxResult)
			return true
		}
		if !hheaOK {
			f.HmtxResult = ResultHmtxRequiresHhea
			logTableResult(log, "hmtx", f.HmtxResult)
			return true
		}
		f.Hmtx, f.HmtxResult = loadHmtx(rec.bytes(data), f.Maxp, f.Hhea)
		logTableResult(log, "hmtx", f.HmtxResult)
		return true

	case LoadLoca:
		if f.LocaResult != ResultFailedFindTable {
			return false
		}
		maxpDone, maxpOK := depState(present, LoadMaxp, f.MaxpResult, f.Maxp != nil)
		headDone, headOK := depState(present, LoadHead, f.HeadResult, f.Head != nil)
		if !maxpDone || !headDone {
			return false
		}
		if !maxpOK {
			f.LocaResult = ResultLocaRequiresMaxp
			logTableResult(log, "loca", f.LocaResult)
			return true
		}
		if !headOK {
			f.LocaResult = ResultLocaRequiresHead
			logTableResult(log, "loca", f.LocaResult)
			return true
		}
		glyfRec, glyfFound := f.Directory.find(tagGlyf)
		var glyfLen int
		if glyfFound {
			glyfLen = int(glyfRec.Length)
		}
		f.Loca, f.LocaResult = loadLoca(rec.bytes(data), f.Maxp, f.Head, glyfLen)
		logTableResult(log, "loca", f.LocaResult)
		return true

	case LoadPost:
		if f.PostResult != ResultFailedFindTable {
			return false
		}
		f.Post, f.PostResult = loadPost(rec.bytes(data))
		logTableResult(log, "post", f.PostResult)
		return true

	case LoadName:
		if f.NameResult != ResultFailedFindTable {
			return false
		}
		f.Name, f.NameResult = loadName(rec.bytes(data))
		logTableResult(log, "name", f.NameResult)
		return true

	case LoadCmap:
		if f.CmapResult != ResultFailedFindTable {
			return false
		}
		f.Cmap, f.CmapResult = loadCmap(rec.bytes(data))
		logTableResult(log, "cmap", f.CmapResult)
		return true

	case LoadGlyf:
		if f.GlyfResult != ResultFailedFindTable {
			return false
		}
		maxpDone, maxpOK := depState(present, LoadMaxp, f.MaxpResult, f.Maxp != nil)
		locaDone, locaOK := depState(present, LoadLoca, f.LocaResult, f.Loca != nil)
		if !maxpDone || !locaDone {
			return false
		}
		if !maxpOK {
			f.GlyfResult = ResultGlyfRequiresMaxp
			logTableResult(log, "glyf", f.GlyfResult)
			return true
		}
		if !locaOK {
			f.GlyfResult = ResultGlyfRequiresLoca
			logTableResult(log, "glyf", f.GlyfResult)
			return true
		}
		f.Glyf, f.GlyfResult = loadGlyf(rec.bytes(data), f.Maxp, f.Loca)
		logTableResult(log, "glyf", f.GlyfResult)
		return true
	}
	return false
}

func logTableResult(log *zap.Logger, name string, res Result) {
	if res == ResultSuccess {
		log.Debug("table loaded", zap.String("table", name))
	} else {
		log.Debug("table load failed", zap.String("table", name), zap.String("result", res.Name()))
	}
}
