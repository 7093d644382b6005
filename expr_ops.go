package mongopipe

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The operator methods below implement the generated Builder interface,
// grouped the way the MongoDB operator reference groups them. Single-operand
// operators store the operand bare, multi-operand ones store an argument
// array and the document-form operators fold optional trailing arguments
// into their named keys.

// Arithmetic.

func (e *Expr) Abs(number any) { e.apply("$abs", number) }

func (e *Expr) Add(exprs ...any) { e.applyArray("$add", exprs...) }

func (e *Expr) Ceil(number any) { e.apply("$ceil", number) }

func (e *Expr) Divide(dividend, divisor any) { e.applyArray("$divide", dividend, divisor) }

func (e *Expr) Exp(exponent any) { e.apply("$exp", exponent) }

func (e *Expr) Floor(number any) { e.apply("$floor", number) }

func (e *Expr) Ln(number any) { e.apply("$ln", number) }

func (e *Expr) Log(number, base any) { e.applyArray("$log", number, base) }

func (e *Expr) Log10(number any) { e.apply("$log10", number) }

func (e *Expr) Mod(dividend, divisor any) { e.applyArray("$mod", dividend, divisor) }

func (e *Expr) Multiply(exprs ...any) { e.applyArray("$multiply", exprs...) }

func (e *Expr) Pow(number, exponent any) { e.applyArray("$pow", number, exponent) }

func (e *Expr) Round(number any, place ...any) {
	e.applyArray("$round", append([]any{number}, place...)...)
}

func (e *Expr) Sqrt(number any) { e.apply("$sqrt", number) }

func (e *Expr) Subtract(a, b any) { e.applyArray("$subtract", a, b) }

func (e *Expr) Trunc(number any, place ...any) {
	e.applyArray("$trunc", append([]any{number}, place...)...)
}

// Array.

func (e *Expr) ArrayElemAt(array, idx any) { e.applyArray("$arrayElemAt", array, idx) }

func (e *Expr) ArrayToObject(array any) { e.apply("$arrayToObject", array) }

func (e *Expr) ConcatArrays(arrays ...any) { e.applyArray("$concatArrays", arrays...) }

func (e *Expr) Filter(input, as, cond any) {
	e.applyDoc("$filter", bson.M{"input": input, "as": as, "cond": cond}, nil, nil)
}

func (e *Expr) First(expr any) { e.apply("$first", expr) }

func (e *Expr) FirstN(n, input any) {
	e.applyDoc("$firstN", bson.M{"n": n, "input": input}, nil, nil)
}

func (e *Expr) In(value, array any) { e.applyArray("$in", value, array) }

func (e *Expr) IndexOfArray(array, search any, opts ...any) {
	e.applyArray("$indexOfArray", append([]any{array, search}, opts...)...)
}

func (e *Expr) IsArray(expr any) { e.apply("$isArray", expr) }

func (e *Expr) Last(expr any) { e.apply("$last", expr) }

func (e *Expr) LastN(n, input any) {
	e.applyDoc("$lastN", bson.M{"n": n, "input": input}, nil, nil)
}

func (e *Expr) Map(input, as, in any) {
	e.applyDoc("$map", bson.M{"input": input, "as": as, "in": in}, nil, nil)
}

func (e *Expr) MaxN(n, input any) {
	e.applyDoc("$maxN", bson.M{"n": n, "input": input}, nil, nil)
}

func (e *Expr) MinN(n, input any) {
	e.applyDoc("$minN", bson.M{"n": n, "input": input}, nil, nil)
}

func (e *Expr) ObjectToArray(object any) { e.apply("$objectToArray", object) }

func (e *Expr) Range(start, end any, step ...any) {
	e.applyArray("$range", append([]any{start, end}, step...)...)
}

func (e *Expr) Reduce(input, initialValue, in any) {
	e.applyDoc("$reduce", bson.M{"input": input, "initialValue": initialValue, "in": in}, nil, nil)
}

func (e *Expr) ReverseArray(array any) { e.apply("$reverseArray", array) }

func (e *Expr) Size(array any) { e.apply("$size", array) }

func (e *Expr) Slice(array any, args ...any) {
	e.applyArray("$slice", append([]any{array}, args...)...)
}

func (e *Expr) SortArray(input, sortBy any) {
	e.applyDoc("$sortArray", bson.M{"input": input, "sortBy": sortBy}, nil, nil)
}

func (e *Expr) Zip(inputs any, opts ...any) {
	e.applyDoc("$zip", bson.M{"inputs": inputs}, []string{"useLongestLength", "defaults"}, opts)
}

// Boolean.

func (e *Expr) And(exprs ...any) { e.applyArray("$and", exprs...) }

func (e *Expr) Not(expr any) { e.apply("$not", expr) }

func (e *Expr) Or(exprs ...any) { e.applyArray("$or", exprs...) }

// Comparison.

func (e *Expr) Cmp(a, b any) { e.applyArray("$cmp", a, b) }

func (e *Expr) Eq(a, b any) { e.applyArray("$eq", a, b) }

func (e *Expr) Gt(a, b any) { e.applyArray("$gt", a, b) }

func (e *Expr) Gte(a, b any) { e.applyArray("$gte", a, b) }

func (e *Expr) Lt(a, b any) { e.applyArray("$lt", a, b) }

func (e *Expr) Lte(a, b any) { e.applyArray("$lte", a, b) }

func (e *Expr) Ne(a, b any) { e.applyArray("$ne", a, b) }

// Conditional.

func (e *Expr) Cond(ifExpr, thenExpr, elseExpr any) {
	e.applyDoc("$cond", bson.M{"if": ifExpr, "then": thenExpr, "else": elseExpr}, nil, nil)
}

func (e *Expr) IfNull(expr, replacement any) { e.applyArray("$ifNull", expr, replacement) }

// Switch opens a $switch expression under the current field context. The
// branches document is stored by reference so Case, Then and Default can
// keep filling it in while other calls chain.
func (e *Expr) Switch() {
	sw := bson.M{}
	e.applyRaw("$switch", sw)
	e.sw = sw
	e.branch = nil
}

// Case starts a $switch branch; it needs an open Switch and no branch still
// waiting for its Then.
func (e *Expr) Case(caseExpr any) {
	if e.sw == nil {
		e.fail(fmt.Errorf("mongopipe: case requires an open switch"))
		return
	}
	if e.branch != nil {
		e.fail(fmt.Errorf("mongopipe: previous switch case is missing its then"))
		return
	}
	e.branch = bson.M{"case": e.normalize(caseExpr)}
}

// Then completes the pending branch started by Case.
func (e *Expr) Then(thenExpr any) {
	if e.branch == nil {
		e.fail(fmt.Errorf("mongopipe: then requires a preceding case"))
		return
	}
	e.branch["then"] = e.normalize(thenExpr)
	branches, _ := e.sw["branches"].(bson.A)
	e.sw["branches"] = append(branches, e.branch)
	e.branch = nil
}

// Default sets the fallback result of the open $switch expression.
func (e *Expr) Default(defaultExpr any) {
	if e.sw == nil {
		e.fail(fmt.Errorf("mongopipe: default requires an open switch"))
		return
	}
	if e.branch != nil {
		e.fail(fmt.Errorf("mongopipe: switch case is missing its then"))
		return
	}
	e.sw["default"] = e.normalize(defaultExpr)
}

// Data size.

func (e *Expr) BinarySize(expr any) { e.apply("$binarySize", expr) }

func (e *Expr) BsonSize(object any) { e.apply("$bsonSize", object) }

// Date.

func (e *Expr) DateAdd(startDate, unit, amount any, opts ...any) {
	e.applyDoc("$dateAdd", bson.M{"startDate": startDate, "unit": unit, "amount": amount},
		[]string{"timezone"}, opts)
}

func (e *Expr) DateDiff(startDate, endDate, unit any, opts ...any) {
	e.applyDoc("$dateDiff", bson.M{"startDate": startDate, "endDate": endDate, "unit": unit},
		[]string{"timezone", "startOfWeek"}, opts)
}

func (e *Expr) DateFromParts(parts any) { e.apply("$dateFromParts", parts) }

func (e *Expr) DateFromString(dateString any, opts ...any) {
	e.applyDoc("$dateFromString", bson.M{"dateString": dateString},
		[]string{"format", "timezone", "onError", "onNull"}, opts)
}

func (e *Expr) DateSubtract(startDate, unit, amount any, opts ...any) {
	e.applyDoc("$dateSubtract", bson.M{"startDate": startDate, "unit": unit, "amount": amount},
		[]string{"timezone"}, opts)
}

func (e *Expr) DateToParts(date any, opts ...any) {
	e.applyDoc("$dateToParts", bson.M{"date": date}, []string{"timezone", "iso8601"}, opts)
}

func (e *Expr) DateToString(format, date any, opts ...any) {
	e.applyDoc("$dateToString", bson.M{"format": format, "date": date},
		[]string{"timezone", "onNull"}, opts)
}

func (e *Expr) DateTrunc(date, unit any, opts ...any) {
	e.applyDoc("$dateTrunc", bson.M{"date": date, "unit": unit},
		[]string{"binSize", "timezone", "startOfWeek"}, opts)
}

func (e *Expr) DayOfMonth(date any) { e.apply("$dayOfMonth", date) }

func (e *Expr) DayOfWeek(date any) { e.apply("$dayOfWeek", date) }

func (e *Expr) DayOfYear(date any) { e.apply("$dayOfYear", date) }

func (e *Expr) Hour(date any) { e.apply("$hour", date) }

func (e *Expr) IsoDayOfWeek(date any) { e.apply("$isoDayOfWeek", date) }

func (e *Expr) IsoWeek(date any) { e.apply("$isoWeek", date) }

func (e *Expr) IsoWeekYear(date any) { e.apply("$isoWeekYear", date) }

func (e *Expr) Millisecond(date any) { e.apply("$millisecond", date) }

func (e *Expr) Minute(date any) { e.apply("$minute", date) }

func (e *Expr) Month(date any) { e.apply("$month", date) }

func (e *Expr) Second(date any) { e.apply("$second", date) }

func (e *Expr) ToDate(expr any) { e.apply("$toDate", expr) }

func (e *Expr) Week(date any) { e.apply("$week", date) }

func (e *Expr) Year(date any) { e.apply("$year", date) }

// Literal stores the value untouched; nothing inside it is resolved.
func (e *Expr) Literal(value any) { e.applyRaw("$literal", value) }

// Miscellaneous.

// GetField uses the field-name shorthand when no input document is given.
func (e *Expr) GetField(field any, input ...any) {
	if len(input) == 0 {
		e.apply("$getField", field)
		return
	}
	e.applyDoc("$getField", bson.M{"field": field}, []string{"input"}, input)
}

func (e *Expr) Rand() { e.applyRaw("$rand", bson.M{}) }

func (e *Expr) SampleRate(rate any) { e.apply("$sampleRate", rate) }

// Object.

func (e *Expr) MergeObjects(objects ...any) { e.applyAccum("$mergeObjects", objects) }

func (e *Expr) SetField(field, input, value any) {
	e.applyDoc("$setField", bson.M{"field": field, "input": input, "value": value}, nil, nil)
}

func (e *Expr) UnsetField(field, input any) {
	e.applyDoc("$unsetField", bson.M{"field": field, "input": input}, nil, nil)
}

// Set.

// AllElementsTrue wraps its operand in the argument array the server
// requires, since the operand itself resolves to an array.
func (e *Expr) AllElementsTrue(array any) { e.applyArray("$allElementsTrue", array) }

// AnyElementTrue wraps its operand like AllElementsTrue.
func (e *Expr) AnyElementTrue(array any) { e.applyArray("$anyElementTrue", array) }

func (e *Expr) SetDifference(a, b any) { e.applyArray("$setDifference", a, b) }

func (e *Expr) SetEquals(arrays ...any) { e.applyArray("$setEquals", arrays...) }

func (e *Expr) SetIntersection(arrays ...any) { e.applyArray("$setIntersection", arrays...) }

func (e *Expr) SetIsSubset(a, b any) { e.applyArray("$setIsSubset", a, b) }

func (e *Expr) SetUnion(arrays ...any) { e.applyArray("$setUnion", arrays...) }

// String.

func (e *Expr) Concat(exprs ...any) { e.applyArray("$concat", exprs...) }

func (e *Expr) IndexOfBytes(str, substr any, opts ...any) {
	e.applyArray("$indexOfBytes", append([]any{str, substr}, opts...)...)
}

func (e *Expr) IndexOfCP(str, substr any, opts ...any) {
	e.applyArray("$indexOfCP", append([]any{str, substr}, opts...)...)
}

func (e *Expr) LTrim(input any, chars ...any) {
	e.applyDoc("$ltrim", bson.M{"input": input}, []string{"chars"}, chars)
}

func (e *Expr) RegexFind(input, regex any, opts ...any) {
	e.applyDoc("$regexFind", bson.M{"input": input, "regex": regex}, []string{"options"}, opts)
}

func (e *Expr) RegexFindAll(input, regex any, opts ...any) {
	e.applyDoc("$regexFindAll", bson.M{"input": input, "regex": regex}, []string{"options"}, opts)
}

func (e *Expr) RegexMatch(input, regex any, opts ...any) {
	e.applyDoc("$regexMatch", bson.M{"input": input, "regex": regex}, []string{"options"}, opts)
}

func (e *Expr) ReplaceOne(input, find, replacement any) {
	e.applyDoc("$replaceOne", bson.M{"input": input, "find": find, "replacement": replacement}, nil, nil)
}

func (e *Expr) ReplaceAll(input, find, replacement any) {
	e.applyDoc("$replaceAll", bson.M{"input": input, "find": find, "replacement": replacement}, nil, nil)
}

func (e *Expr) RTrim(input any, chars ...any) {
	e.applyDoc("$rtrim", bson.M{"input": input}, []string{"chars"}, chars)
}

func (e *Expr) Split(str, delimiter any) { e.applyArray("$split", str, delimiter) }

func (e *Expr) StrLenBytes(str any) { e.apply("$strLenBytes", str) }

func (e *Expr) StrLenCP(str any) { e.apply("$strLenCP", str) }

func (e *Expr) Strcasecmp(a, b any) { e.applyArray("$strcasecmp", a, b) }

func (e *Expr) Substr(str, start, length any) { e.applyArray("$substr", str, start, length) }

func (e *Expr) SubstrBytes(str, start, count any) {
	e.applyArray("$substrBytes", str, start, count)
}

func (e *Expr) SubstrCP(str, start, count any) { e.applyArray("$substrCP", str, start, count) }

func (e *Expr) ToLower(expr any) { e.apply("$toLower", expr) }

func (e *Expr) ToUpper(expr any) { e.apply("$toUpper", expr) }

func (e *Expr) Trim(input any, chars ...any) {
	e.applyDoc("$trim", bson.M{"input": input}, []string{"chars"}, chars)
}

// Text.

func (e *Expr) Meta(keyword any) { e.apply("$meta", keyword) }

// Trigonometry.

func (e *Expr) Sin(expr any) { e.apply("$sin", expr) }

func (e *Expr) Cos(expr any) { e.apply("$cos", expr) }

func (e *Expr) Tan(expr any) { e.apply("$tan", expr) }

func (e *Expr) Asin(expr any) { e.apply("$asin", expr) }

func (e *Expr) Acos(expr any) { e.apply("$acos", expr) }

func (e *Expr) Atan(expr any) { e.apply("$atan", expr) }

func (e *Expr) Atan2(y, x any) { e.applyArray("$atan2", y, x) }

func (e *Expr) Asinh(expr any) { e.apply("$asinh", expr) }

func (e *Expr) Acosh(expr any) { e.apply("$acosh", expr) }

func (e *Expr) Atanh(expr any) { e.apply("$atanh", expr) }

func (e *Expr) Sinh(expr any) { e.apply("$sinh", expr) }

func (e *Expr) Cosh(expr any) { e.apply("$cosh", expr) }

func (e *Expr) Tanh(expr any) { e.apply("$tanh", expr) }

func (e *Expr) DegreesToRadians(expr any) { e.apply("$degreesToRadians", expr) }

func (e *Expr) RadiansToDegrees(expr any) { e.apply("$radiansToDegrees", expr) }

// Type.

func (e *Expr) Convert(input, to any, opts ...any) {
	e.applyDoc("$convert", bson.M{"input": input, "to": to}, []string{"onError", "onNull"}, opts)
}

func (e *Expr) IsNumber(expr any) { e.apply("$isNumber", expr) }

func (e *Expr) ToBool(expr any) { e.apply("$toBool", expr) }

func (e *Expr) ToDecimal(expr any) { e.apply("$toDecimal", expr) }

func (e *Expr) ToDouble(expr any) { e.apply("$toDouble", expr) }

func (e *Expr) ToInt(expr any) { e.apply("$toInt", expr) }

func (e *Expr) ToLong(expr any) { e.apply("$toLong", expr) }

func (e *Expr) ToObjectID(expr any) { e.apply("$toObjectId", expr) }

func (e *Expr) ToString(expr any) { e.apply("$toString", expr) }

func (e *Expr) Type(expr any) { e.apply("$type", expr) }

// Accumulators.

func (e *Expr) AddToSet(expr any) { e.apply("$addToSet", expr) }

func (e *Expr) Avg(exprs ...any) { e.applyAccum("$avg", exprs) }

func (e *Expr) Count() { e.applyRaw("$count", bson.M{}) }

func (e *Expr) Max(exprs ...any) { e.applyAccum("$max", exprs) }

func (e *Expr) Min(exprs ...any) { e.applyAccum("$min", exprs) }

func (e *Expr) Push(expr any) { e.apply("$push", expr) }

func (e *Expr) StdDevPop(exprs ...any) { e.applyAccum("$stdDevPop", exprs) }

func (e *Expr) StdDevSamp(exprs ...any) { e.applyAccum("$stdDevSamp", exprs) }

func (e *Expr) Sum(exprs ...any) { e.applyAccum("$sum", exprs) }

// Variable.

func (e *Expr) Let(vars, in any) {
	e.applyDoc("$let", bson.M{"vars": vars, "in": in}, nil, nil)
}
