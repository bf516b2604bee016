package usecase

var TruncateBody = truncateBody
