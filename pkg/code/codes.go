package code

import (
	"net/http"
)

// 服务级错误码
var (
	ErrorServerInternal  = NewError(10000001, http.StatusInternalServerError, lang{en: "Internal Server Error", zh_cn: "服务内部错误"})
	ErrorNotFound        = NewError(10000002, http.StatusNotFound, lang{en: "Not Found", zh_cn: "资源不存在"})
	ErrorTooManyRequests = NewError(10000003, http.StatusTooManyRequests, lang{en: "Too Many Requests", zh_cn: "请求过多"})
	ErrorInvalidParams   = NewError(10000004, http.StatusBadRequest, lang{en: "Invalid request body", zh_cn: "请求参数错误"})
	ErrorRequestTimeout  = NewError(10000005, http.StatusGatewayTimeout, lang{en: "Request Timeout", zh_cn: "请求超时"})
	ErrorDBQuery         = NewError(10000006, http.StatusInternalServerError, lang{en: "Internal Server Error", zh_cn: "数据库查询错误"})
)

// 认证相关错误码
var (
	ErrorNoCredentials      = NewError(10100001, http.StatusBadRequest, lang{en: "No credentials provided", zh_cn: "未提供登录凭据"})
	ErrorInvalidCredentials = NewError(10100002, http.StatusUnauthorized, lang{en: "Invalid credentials", zh_cn: "用户名或密码错误"})
	ErrorNoAuthHeader       = NewError(10100003, http.StatusUnauthorized, lang{en: "No 'Authorization' header found", zh_cn: "缺少 Authorization 请求头"})
	ErrorNoBearerToken      = NewError(10100004, http.StatusUnauthorized, lang{en: "No 'Bearer' token found", zh_cn: "缺少 Bearer 令牌"})
	ErrorInvalidJWT         = NewError(10100005, http.StatusUnauthorized, lang{en: "Invalid JWT", zh_cn: "无效的 JWT"})
	ErrorTokenGenerate      = NewError(10100006, http.StatusInternalServerError, lang{en: "Internal Server Error", zh_cn: "生成令牌失败"})
	ErrorUsernameExists     = NewError(10100007, http.StatusBadRequest, lang{en: "The username already exists", zh_cn: "用户名已存在"})
	ErrorRegisterDisabled   = NewError(10100008, http.StatusForbidden, lang{en: "Registration is disabled", zh_cn: "注册功能已关闭"})
)

// 注册字段校验错误码，消息带格式化参数
var (
	ErrorMissingField    = NewError(10200001, http.StatusUnprocessableEntity, lang{en: "Missing '%s' in request body", zh_cn: "请求体缺少 '%s' 字段"})
	ErrorFieldNotString  = NewError(10200002, http.StatusUnprocessableEntity, lang{en: "Field: '%s' must be type String", zh_cn: "字段 '%s' 必须为字符串类型"})
	ErrorFieldNotTrimmed = NewError(10200003, http.StatusUnprocessableEntity, lang{en: "Field: '%s' cannot start or end with whitespace", zh_cn: "字段 '%s' 首尾不能有空白字符"})
	ErrorFieldTooShort   = NewError(10200004, http.StatusUnprocessableEntity, lang{en: "Field: '%s' must be at least %d characters long", zh_cn: "字段 '%s' 至少需要 %d 个字符"})
	ErrorFieldTooLong    = NewError(10200005, http.StatusUnprocessableEntity, lang{en: "Field: '%s' must be at most %d characters long", zh_cn: "字段 '%s' 最多 %d 个字符"})
)

// 资源操作错误码
var (
	ErrorInvalidID        = NewError(10300001, http.StatusBadRequest, lang{en: "The `id` is not valid", zh_cn: "`id` 不合法"})
	ErrorMissingName      = NewError(10300002, http.StatusBadRequest, lang{en: "Missing `name` in request body", zh_cn: "请求体缺少 `name` 字段"})
	ErrorFolderNameExists = NewError(10300003, http.StatusBadRequest, lang{en: "Folder name already exists", zh_cn: "文件夹名称已存在"})
	ErrorTagNameExists    = NewError(10300004, http.StatusBadRequest, lang{en: "Tag name already exists", zh_cn: "标签名称已存在"})
	ErrorMissingTitle     = NewError(10300005, http.StatusBadRequest, lang{en: "Missing `title` in request body", zh_cn: "请求体缺少 `title` 字段"})
	ErrorInvalidFolderID  = NewError(10300006, http.StatusBadRequest, lang{en: "The `folderId` is not valid", zh_cn: "`folderId` 不合法"})
	ErrorTagsNotArray     = NewError(10300007, http.StatusBadRequest, lang{en: "The `tags` must be an array", zh_cn: "`tags` 必须为数组"})
	ErrorTagsNonExistent  = NewError(10300008, http.StatusBadRequest, lang{en: "The `tags` contains an non existent id", zh_cn: "`tags` 包含不存在的 id"})
	ErrorInvalidTagID     = NewError(10300009, http.StatusBadRequest, lang{en: "The `tagId` is not valid", zh_cn: "`tagId` 不合法"})
)
