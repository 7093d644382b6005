// Package optable is the declarative table of MongoDB aggregation expression
// operators exposed by the fluent builder. The opgen tool generates the
// Builder interface, the Operator forwarding methods and the test recorder
// from this table; tests walk it to verify the generated surface.
package optable

// Op describes one fluent operator method.
//
// Params lists the fixed parameter names. When Variadic is set the last
// entry in Params names a trailing ...any parameter (optional or repeated
// arguments per the MongoDB operator reference). The $switch builder verbs
// Case, Then and Default share the $switch name; they manage branch state
// rather than apply an operator directly.
type Op struct {
	Method   string
	Name     string
	Params   []string
	Variadic bool
	Doc      string
}

// Ops lists every generated operator method, grouped the way the MongoDB
// operator reference groups them. Arities follow the reference: fixed
// arguments stay fixed, optional trailing arguments and open argument lists
// become the variadic tail.
var Ops = []Op{
	// Arithmetic.
	{Method: "Abs", Name: "$abs", Params: []string{"number"}, Doc: "applies $abs, the absolute value of a number."},
	{Method: "Add", Name: "$add", Params: []string{"exprs"}, Variadic: true, Doc: "applies $add, adding numbers together or numbers to a date."},
	{Method: "Ceil", Name: "$ceil", Params: []string{"number"}, Doc: "applies $ceil, the smallest integer greater than or equal to a number."},
	{Method: "Divide", Name: "$divide", Params: []string{"dividend", "divisor"}, Doc: "applies $divide, dividing the first number by the second."},
	{Method: "Exp", Name: "$exp", Params: []string{"exponent"}, Doc: "applies $exp, raising e to the given exponent."},
	{Method: "Floor", Name: "$floor", Params: []string{"number"}, Doc: "applies $floor, the largest integer less than or equal to a number."},
	{Method: "Ln", Name: "$ln", Params: []string{"number"}, Doc: "applies $ln, the natural logarithm of a number."},
	{Method: "Log", Name: "$log", Params: []string{"number", "base"}, Doc: "applies $log, the logarithm of a number in the given base."},
	{Method: "Log10", Name: "$log10", Params: []string{"number"}, Doc: "applies $log10, the base-10 logarithm of a number."},
	{Method: "Mod", Name: "$mod", Params: []string{"dividend", "divisor"}, Doc: "applies $mod, the remainder of dividing the first number by the second."},
	{Method: "Multiply", Name: "$multiply", Params: []string{"exprs"}, Variadic: true, Doc: "applies $multiply, multiplying numbers together."},
	{Method: "Pow", Name: "$pow", Params: []string{"number", "exponent"}, Doc: "applies $pow, raising a number to the given exponent."},
	{Method: "Round", Name: "$round", Params: []string{"number", "place"}, Variadic: true, Doc: "applies $round, rounding a number to a whole integer or decimal place."},
	{Method: "Sqrt", Name: "$sqrt", Params: []string{"number"}, Doc: "applies $sqrt, the square root of a positive number."},
	{Method: "Subtract", Name: "$subtract", Params: []string{"a", "b"}, Doc: "applies $subtract, subtracting the second value from the first."},
	{Method: "Trunc", Name: "$trunc", Params: []string{"number", "place"}, Variadic: true, Doc: "applies $trunc, truncating a number to a whole integer or decimal place."},

	// Array.
	{Method: "ArrayElemAt", Name: "$arrayElemAt", Params: []string{"array", "idx"}, Doc: "applies $arrayElemAt, the element at the given array index."},
	{Method: "ArrayToObject", Name: "$arrayToObject", Params: []string{"array"}, Doc: "applies $arrayToObject, converting a key-value pair array to a document."},
	{Method: "ConcatArrays", Name: "$concatArrays", Params: []string{"arrays"}, Variadic: true, Doc: "applies $concatArrays, concatenating arrays into one."},
	{Method: "Filter", Name: "$filter", Params: []string{"input", "as", "cond"}, Doc: "applies $filter, selecting the array elements for which cond is true."},
	{Method: "First", Name: "$first", Params: []string{"expr"}, Doc: "applies $first, the first element of an array or group."},
	{Method: "FirstN", Name: "$firstN", Params: []string{"n", "input"}, Doc: "applies $firstN, the first n elements of an array or group."},
	{Method: "In", Name: "$in", Params: []string{"value", "array"}, Doc: "applies $in, whether the value occurs in the array."},
	{Method: "IndexOfArray", Name: "$indexOfArray", Params: []string{"array", "search", "opts"}, Variadic: true, Doc: "applies $indexOfArray, the index of the search value, with optional start and end bounds."},
	{Method: "IsArray", Name: "$isArray", Params: []string{"expr"}, Doc: "applies $isArray, whether the operand is an array."},
	{Method: "Last", Name: "$last", Params: []string{"expr"}, Doc: "applies $last, the last element of an array or group."},
	{Method: "LastN", Name: "$lastN", Params: []string{"n", "input"}, Doc: "applies $lastN, the last n elements of an array or group."},
	{Method: "Map", Name: "$map", Params: []string{"input", "as", "in"}, Doc: "applies $map, evaluating in for every element of input bound to as."},
	{Method: "MaxN", Name: "$maxN", Params: []string{"n", "input"}, Doc: "applies $maxN, the n largest values of an array or group."},
	{Method: "MinN", Name: "$minN", Params: []string{"n", "input"}, Doc: "applies $minN, the n smallest values of an array or group."},
	{Method: "ObjectToArray", Name: "$objectToArray", Params: []string{"object"}, Doc: "applies $objectToArray, converting a document to a key-value pair array."},
	{Method: "Range", Name: "$range", Params: []string{"start", "end", "step"}, Variadic: true, Doc: "applies $range, a sequence of integers from start to end with an optional step."},
	{Method: "Reduce", Name: "$reduce", Params: []string{"input", "initialValue", "in"}, Doc: "applies $reduce, folding an array into a single value."},
	{Method: "ReverseArray", Name: "$reverseArray", Params: []string{"array"}, Doc: "applies $reverseArray, the array with its elements in reverse order."},
	{Method: "Size", Name: "$size", Params: []string{"array"}, Doc: "applies $size, the number of elements in an array."},
	{Method: "Slice", Name: "$slice", Params: []string{"array", "args"}, Variadic: true, Doc: "applies $slice, a subset of an array; pass n, or position and n."},
	{Method: "SortArray", Name: "$sortArray", Params: []string{"input", "sortBy"}, Doc: "applies $sortArray, sorting array elements by the given sort specification."},
	{Method: "Zip", Name: "$zip", Params: []string{"inputs", "opts"}, Variadic: true, Doc: "applies $zip, transposing arrays; optionally pass useLongestLength and defaults."},

	// Boolean.
	{Method: "And", Name: "$and", Params: []string{"exprs"}, Variadic: true, Doc: "applies $and, true when all expressions are true."},
	{Method: "Not", Name: "$not", Params: []string{"expr"}, Doc: "applies $not, the boolean opposite of its operand."},
	{Method: "Or", Name: "$or", Params: []string{"exprs"}, Variadic: true, Doc: "applies $or, true when any expression is true."},

	// Comparison.
	{Method: "Cmp", Name: "$cmp", Params: []string{"a", "b"}, Doc: "applies $cmp, -1, 0 or 1 comparing two values."},
	{Method: "Eq", Name: "$eq", Params: []string{"a", "b"}, Doc: "applies $eq, whether two values are equivalent."},
	{Method: "Gt", Name: "$gt", Params: []string{"a", "b"}, Doc: "applies $gt, whether the first value is greater than the second."},
	{Method: "Gte", Name: "$gte", Params: []string{"a", "b"}, Doc: "applies $gte, whether the first value is greater than or equal to the second."},
	{Method: "Lt", Name: "$lt", Params: []string{"a", "b"}, Doc: "applies $lt, whether the first value is less than the second."},
	{Method: "Lte", Name: "$lte", Params: []string{"a", "b"}, Doc: "applies $lte, whether the first value is less than or equal to the second."},
	{Method: "Ne", Name: "$ne", Params: []string{"a", "b"}, Doc: "applies $ne, whether two values are not equivalent."},

	// Conditional.
	{Method: "Cond", Name: "$cond", Params: []string{"ifExpr", "thenExpr", "elseExpr"}, Doc: "applies $cond, evaluating thenExpr or elseExpr based on ifExpr."},
	{Method: "IfNull", Name: "$ifNull", Params: []string{"expr", "replacement"}, Doc: "applies $ifNull, the expression unless it is null or missing, else the replacement."},

	// $switch builder verbs.
	{Method: "Switch", Name: "$switch", Doc: "opens a $switch expression; add branches with Case and Then, close with Default or Document."},
	{Method: "Case", Name: "$switch", Params: []string{"caseExpr"}, Doc: "starts a $switch branch with its case condition."},
	{Method: "Then", Name: "$switch", Params: []string{"thenExpr"}, Doc: "completes the pending $switch branch with its result."},
	{Method: "Default", Name: "$switch", Params: []string{"defaultExpr"}, Doc: "sets the default result of the open $switch expression."},

	// Data size.
	{Method: "BinarySize", Name: "$binarySize", Params: []string{"expr"}, Doc: "applies $binarySize, the byte size of a string or binary value."},
	{Method: "BsonSize", Name: "$bsonSize", Params: []string{"object"}, Doc: "applies $bsonSize, the byte size of a document when encoded as BSON."},

	// Date.
	{Method: "DateAdd", Name: "$dateAdd", Params: []string{"startDate", "unit", "amount", "opts"}, Variadic: true, Doc: "applies $dateAdd, adding amount units to a date; optionally pass a timezone."},
	{Method: "DateDiff", Name: "$dateDiff", Params: []string{"startDate", "endDate", "unit", "opts"}, Variadic: true, Doc: "applies $dateDiff, the difference between two dates in units; optionally pass timezone and startOfWeek."},
	{Method: "DateFromParts", Name: "$dateFromParts", Params: []string{"parts"}, Doc: "applies $dateFromParts, constructing a date from a document of calendar parts."},
	{Method: "DateFromString", Name: "$dateFromString", Params: []string{"dateString", "opts"}, Variadic: true, Doc: "applies $dateFromString, parsing a date; optionally pass format, timezone, onError and onNull."},
	{Method: "DateSubtract", Name: "$dateSubtract", Params: []string{"startDate", "unit", "amount", "opts"}, Variadic: true, Doc: "applies $dateSubtract, subtracting amount units from a date; optionally pass a timezone."},
	{Method: "DateToParts", Name: "$dateToParts", Params: []string{"date", "opts"}, Variadic: true, Doc: "applies $dateToParts, splitting a date into calendar parts; optionally pass timezone and iso8601."},
	{Method: "DateToString", Name: "$dateToString", Params: []string{"format", "date", "opts"}, Variadic: true, Doc: "applies $dateToString, formatting a date; optionally pass timezone and onNull."},
	{Method: "DateTrunc", Name: "$dateTrunc", Params: []string{"date", "unit", "opts"}, Variadic: true, Doc: "applies $dateTrunc, truncating a date to a unit boundary; optionally pass binSize, timezone and startOfWeek."},
	{Method: "DayOfMonth", Name: "$dayOfMonth", Params: []string{"date"}, Doc: "applies $dayOfMonth, the day of the month (1-31) of a date."},
	{Method: "DayOfWeek", Name: "$dayOfWeek", Params: []string{"date"}, Doc: "applies $dayOfWeek, the day of the week (1 Sunday - 7 Saturday) of a date."},
	{Method: "DayOfYear", Name: "$dayOfYear", Params: []string{"date"}, Doc: "applies $dayOfYear, the day of the year (1-366) of a date."},
	{Method: "Hour", Name: "$hour", Params: []string{"date"}, Doc: "applies $hour, the hour (0-23) of a date."},
	{Method: "IsoDayOfWeek", Name: "$isoDayOfWeek", Params: []string{"date"}, Doc: "applies $isoDayOfWeek, the ISO 8601 weekday (1 Monday - 7 Sunday) of a date."},
	{Method: "IsoWeek", Name: "$isoWeek", Params: []string{"date"}, Doc: "applies $isoWeek, the ISO 8601 week number (1-53) of a date."},
	{Method: "IsoWeekYear", Name: "$isoWeekYear", Params: []string{"date"}, Doc: "applies $isoWeekYear, the ISO 8601 week-numbering year of a date."},
	{Method: "Millisecond", Name: "$millisecond", Params: []string{"date"}, Doc: "applies $millisecond, the millisecond (0-999) of a date."},
	{Method: "Minute", Name: "$minute", Params: []string{"date"}, Doc: "applies $minute, the minute (0-59) of a date."},
	{Method: "Month", Name: "$month", Params: []string{"date"}, Doc: "applies $month, the month (1-12) of a date."},
	{Method: "Second", Name: "$second", Params: []string{"date"}, Doc: "applies $second, the second (0-60) of a date."},
	{Method: "ToDate", Name: "$toDate", Params: []string{"expr"}, Doc: "applies $toDate, converting a value to a date."},
	{Method: "Week", Name: "$week", Params: []string{"date"}, Doc: "applies $week, the week number (0-53) of a date."},
	{Method: "Year", Name: "$year", Params: []string{"date"}, Doc: "applies $year, the year of a date."},

	// Literal.
	{Method: "Literal", Name: "$literal", Params: []string{"value"}, Doc: "applies $literal, the value without parsing it as an expression."},

	// Miscellaneous.
	{Method: "GetField", Name: "$getField", Params: []string{"field", "input"}, Variadic: true, Doc: "applies $getField, reading a named field; optionally pass the input document."},
	{Method: "Rand", Name: "$rand", Doc: "applies $rand, a random float between 0 and 1."},
	{Method: "SampleRate", Name: "$sampleRate", Params: []string{"rate"}, Doc: "applies $sampleRate, randomly selecting documents at the given rate."},

	// Object.
	{Method: "MergeObjects", Name: "$mergeObjects", Params: []string{"objects"}, Variadic: true, Doc: "applies $mergeObjects, combining documents into one."},
	{Method: "SetField", Name: "$setField", Params: []string{"field", "input", "value"}, Doc: "applies $setField, adding or updating a named field in the input document."},
	{Method: "UnsetField", Name: "$unsetField", Params: []string{"field", "input"}, Doc: "applies $unsetField, removing a named field from the input document."},

	// Set.
	{Method: "AllElementsTrue", Name: "$allElementsTrue", Params: []string{"array"}, Doc: "applies $allElementsTrue, whether no element of the array is false."},
	{Method: "AnyElementTrue", Name: "$anyElementTrue", Params: []string{"array"}, Doc: "applies $anyElementTrue, whether any element of the array is true."},
	{Method: "SetDifference", Name: "$setDifference", Params: []string{"a", "b"}, Doc: "applies $setDifference, the elements of the first set missing from the second."},
	{Method: "SetEquals", Name: "$setEquals", Params: []string{"arrays"}, Variadic: true, Doc: "applies $setEquals, whether the sets contain the same distinct elements."},
	{Method: "SetIntersection", Name: "$setIntersection", Params: []string{"arrays"}, Variadic: true, Doc: "applies $setIntersection, the elements common to all sets."},
	{Method: "SetIsSubset", Name: "$setIsSubset", Params: []string{"a", "b"}, Doc: "applies $setIsSubset, whether the first set is a subset of the second."},
	{Method: "SetUnion", Name: "$setUnion", Params: []string{"arrays"}, Variadic: true, Doc: "applies $setUnion, the distinct elements of all sets combined."},

	// String.
	{Method: "Concat", Name: "$concat", Params: []string{"exprs"}, Variadic: true, Doc: "applies $concat, concatenating strings."},
	{Method: "IndexOfBytes", Name: "$indexOfBytes", Params: []string{"str", "substr", "opts"}, Variadic: true, Doc: "applies $indexOfBytes, the byte index of a substring, with optional start and end bounds."},
	{Method: "IndexOfCP", Name: "$indexOfCP", Params: []string{"str", "substr", "opts"}, Variadic: true, Doc: "applies $indexOfCP, the code-point index of a substring, with optional start and end bounds."},
	{Method: "LTrim", Name: "$ltrim", Params: []string{"input", "chars"}, Variadic: true, Doc: "applies $ltrim, removing leading whitespace or the given characters."},
	{Method: "RegexFind", Name: "$regexFind", Params: []string{"input", "regex", "opts"}, Variadic: true, Doc: "applies $regexFind, the first regex match; optionally pass regex options."},
	{Method: "RegexFindAll", Name: "$regexFindAll", Params: []string{"input", "regex", "opts"}, Variadic: true, Doc: "applies $regexFindAll, every regex match; optionally pass regex options."},
	{Method: "RegexMatch", Name: "$regexMatch", Params: []string{"input", "regex", "opts"}, Variadic: true, Doc: "applies $regexMatch, whether the regex matches; optionally pass regex options."},
	{Method: "ReplaceOne", Name: "$replaceOne", Params: []string{"input", "find", "replacement"}, Doc: "applies $replaceOne, replacing the first occurrence of a substring."},
	{Method: "ReplaceAll", Name: "$replaceAll", Params: []string{"input", "find", "replacement"}, Doc: "applies $replaceAll, replacing every occurrence of a substring."},
	{Method: "RTrim", Name: "$rtrim", Params: []string{"input", "chars"}, Variadic: true, Doc: "applies $rtrim, removing trailing whitespace or the given characters."},
	{Method: "Split", Name: "$split", Params: []string{"str", "delimiter"}, Doc: "applies $split, dividing a string into an array on a delimiter."},
	{Method: "StrLenBytes", Name: "$strLenBytes", Params: []string{"str"}, Doc: "applies $strLenBytes, the byte length of a string."},
	{Method: "StrLenCP", Name: "$strLenCP", Params: []string{"str"}, Doc: "applies $strLenCP, the code-point length of a string."},
	{Method: "Strcasecmp", Name: "$strcasecmp", Params: []string{"a", "b"}, Doc: "applies $strcasecmp, case-insensitive string comparison returning -1, 0 or 1."},
	{Method: "Substr", Name: "$substr", Params: []string{"str", "start", "length"}, Doc: "applies $substr, a substring by byte start and length."},
	{Method: "SubstrBytes", Name: "$substrBytes", Params: []string{"str", "start", "count"}, Doc: "applies $substrBytes, a substring by byte start and count."},
	{Method: "SubstrCP", Name: "$substrCP", Params: []string{"str", "start", "count"}, Doc: "applies $substrCP, a substring by code-point start and count."},
	{Method: "ToLower", Name: "$toLower", Params: []string{"expr"}, Doc: "applies $toLower, the string converted to lowercase."},
	{Method: "ToUpper", Name: "$toUpper", Params: []string{"expr"}, Doc: "applies $toUpper, the string converted to uppercase."},
	{Method: "Trim", Name: "$trim", Params: []string{"input", "chars"}, Variadic: true, Doc: "applies $trim, removing surrounding whitespace or the given characters."},

	// Text.
	{Method: "Meta", Name: "$meta", Params: []string{"keyword"}, Doc: "applies $meta, metadata such as textScore for the current document."},

	// Trigonometry.
	{Method: "Sin", Name: "$sin", Params: []string{"expr"}, Doc: "applies $sin, the sine of a value in radians."},
	{Method: "Cos", Name: "$cos", Params: []string{"expr"}, Doc: "applies $cos, the cosine of a value in radians."},
	{Method: "Tan", Name: "$tan", Params: []string{"expr"}, Doc: "applies $tan, the tangent of a value in radians."},
	{Method: "Asin", Name: "$asin", Params: []string{"expr"}, Doc: "applies $asin, the inverse sine in radians."},
	{Method: "Acos", Name: "$acos", Params: []string{"expr"}, Doc: "applies $acos, the inverse cosine in radians."},
	{Method: "Atan", Name: "$atan", Params: []string{"expr"}, Doc: "applies $atan, the inverse tangent in radians."},
	{Method: "Atan2", Name: "$atan2", Params: []string{"y", "x"}, Doc: "applies $atan2, the inverse tangent of y / x in radians."},
	{Method: "Asinh", Name: "$asinh", Params: []string{"expr"}, Doc: "applies $asinh, the inverse hyperbolic sine in radians."},
	{Method: "Acosh", Name: "$acosh", Params: []string{"expr"}, Doc: "applies $acosh, the inverse hyperbolic cosine in radians."},
	{Method: "Atanh", Name: "$atanh", Params: []string{"expr"}, Doc: "applies $atanh, the inverse hyperbolic tangent in radians."},
	{Method: "Sinh", Name: "$sinh", Params: []string{"expr"}, Doc: "applies $sinh, the hyperbolic sine of a value in radians."},
	{Method: "Cosh", Name: "$cosh", Params: []string{"expr"}, Doc: "applies $cosh, the hyperbolic cosine of a value in radians."},
	{Method: "Tanh", Name: "$tanh", Params: []string{"expr"}, Doc: "applies $tanh, the hyperbolic tangent of a value in radians."},
	{Method: "DegreesToRadians", Name: "$degreesToRadians", Params: []string{"expr"}, Doc: "applies $degreesToRadians, converting degrees to radians."},
	{Method: "RadiansToDegrees", Name: "$radiansToDegrees", Params: []string{"expr"}, Doc: "applies $radiansToDegrees, converting radians to degrees."},

	// Type.
	{Method: "Convert", Name: "$convert", Params: []string{"input", "to", "opts"}, Variadic: true, Doc: "applies $convert, converting a value to the given type; optionally pass onError and onNull."},
	{Method: "IsNumber", Name: "$isNumber", Params: []string{"expr"}, Doc: "applies $isNumber, whether the operand is an integer, decimal, double or long."},
	{Method: "ToBool", Name: "$toBool", Params: []string{"expr"}, Doc: "applies $toBool, converting a value to a boolean."},
	{Method: "ToDecimal", Name: "$toDecimal", Params: []string{"expr"}, Doc: "applies $toDecimal, converting a value to a Decimal128."},
	{Method: "ToDouble", Name: "$toDouble", Params: []string{"expr"}, Doc: "applies $toDouble, converting a value to a double."},
	{Method: "ToInt", Name: "$toInt", Params: []string{"expr"}, Doc: "applies $toInt, converting a value to an integer."},
	{Method: "ToLong", Name: "$toLong", Params: []string{"expr"}, Doc: "applies $toLong, converting a value to a long."},
	{Method: "ToObjectID", Name: "$toObjectId", Params: []string{"expr"}, Doc: "applies $toObjectId, converting a value to an ObjectId."},
	{Method: "ToString", Name: "$toString", Params: []string{"expr"}, Doc: "applies $toString, converting a value to a string."},
	{Method: "Type", Name: "$type", Params: []string{"expr"}, Doc: "applies $type, the BSON type name of the operand."},

	// Accumulators (usable in $group, $bucket output and windowed stages).
	{Method: "AddToSet", Name: "$addToSet", Params: []string{"expr"}, Doc: "applies $addToSet, collecting distinct values into an array."},
	{Method: "Avg", Name: "$avg", Params: []string{"exprs"}, Variadic: true, Doc: "applies $avg, the average of numeric values."},
	{Method: "Count", Name: "$count", Doc: "applies $count, the number of documents in a group."},
	{Method: "Max", Name: "$max", Params: []string{"exprs"}, Variadic: true, Doc: "applies $max, the greatest value."},
	{Method: "Min", Name: "$min", Params: []string{"exprs"}, Variadic: true, Doc: "applies $min, the least value."},
	{Method: "Push", Name: "$push", Params: []string{"expr"}, Doc: "applies $push, collecting values into an array."},
	{Method: "StdDevPop", Name: "$stdDevPop", Params: []string{"exprs"}, Variadic: true, Doc: "applies $stdDevPop, the population standard deviation."},
	{Method: "StdDevSamp", Name: "$stdDevSamp", Params: []string{"exprs"}, Variadic: true, Doc: "applies $stdDevSamp, the sample standard deviation."},
	{Method: "Sum", Name: "$sum", Params: []string{"exprs"}, Variadic: true, Doc: "applies $sum, the sum of numeric values."},

	// Variable.
	{Method: "Let", Name: "$let", Params: []string{"vars", "in"}, Doc: "applies $let, binding variables for use in the in expression."},
}

// ByMethod returns the table entry for a method name.
func ByMethod(method string) (Op, bool) {
	for _, op := range Ops {
		if op.Method == method {
			return op, true
		}
	}
	return Op{}, false
}
