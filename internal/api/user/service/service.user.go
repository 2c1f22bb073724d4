// Package usersvc - service người dùng: đăng ký, đăng nhập, hồ sơ kênh, lịch sử xem.
package usersvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	userdto "vid_tube/internal/api/user/dto"
	models "vid_tube/internal/api/user/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
	"vid_tube/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới: kiểm tra trùng username/email rồi băm mật khẩu
func (s *UserService) Register(ctx context.Context, input *userdto.UserRegisterInput) (models.User, error) {
	var zero models.User

	exists, err := s.DocumentExists(ctx, bson.M{"$or": bson.A{
		bson.M{"username": input.Username},
		bson.M{"email": input.Email},
	}})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Username hoặc email đã được sử dụng", common.StatusConflict, nil)
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Username:   input.Username,
		Email:      input.Email,
		FullName:   input.FullName,
		Avatar:     input.Avatar,
		CoverImage: input.Cover,
		Password:   hashed,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  created.ID.Hex(),
		"username": created.Username,
	}).Info("Đã đăng ký user mới")

	created.Password = ""
	return created, nil
}

// Login xác thực thông tin đăng nhập, phát hành cặp access/refresh token
// và lưu refresh token vào document user.
func (s *UserService) Login(ctx context.Context, input *userdto.UserLoginInput) (models.User, string, string, error) {
	var zero models.User

	if input.Username == "" && input.Email == "" {
		return zero, "", "", common.NewError(common.ErrCodeValidationInput, "Cần cung cấp username hoặc email", common.StatusBadRequest, nil)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"username": input.Username},
		bson.M{"email": input.Email},
	}}
	user, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return zero, "", "", common.ErrInvalidCredentials
		}
		return zero, "", "", err
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		return zero, "", "", common.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return zero, "", "", err
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, accessToken, refreshToken, nil
}

// issueTokenPair phát hành cặp token mới và lưu refresh token vào user
func (s *UserService) issueTokenPair(ctx context.Context, user models.User) (string, string, error) {
	cfg := global.MongoDB_ServerConfig

	accessToken, err := utility.CreateToken(cfg.JwtSecret, user.ID.Hex(), user.Username, cfg.AccessTokenExpiry)
	if err != nil {
		return "", "", common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	refreshToken, err := utility.CreateToken(cfg.JwtRefreshSecret, user.ID.Hex(), "", cfg.RefreshTokenExpiry)
	if err != nil {
		return "", "", common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	}
	if _, err := s.UpdateById(ctx, user.ID, updateData); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Logout xóa refresh token đã lưu, vô hiệu các lần refresh sau
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": ""},
	}
	_, err := s.UpdateById(ctx, userID, updateData)
	return err
}

// RefreshTokens xác thực refresh token, so khớp với token đã lưu rồi phát hành cặp mới
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", common.ErrTokenMissing
	}

	cfg := global.MongoDB_ServerConfig
	claims, err := utility.ParseToken(cfg.JwtRefreshSecret, refreshToken)
	if err != nil {
		return "", "", err
	}

	userID := utility.String2ObjectID(claims.UserID)
	if userID.IsZero() {
		return "", "", common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if err == common.ErrNotFound {
			return "", "", common.ErrTokenInvalid
		}
		return "", "", err
	}

	// Refresh token phải trùng với token đang lưu (token cũ bị thu hồi khi rotate)
	if user.RefreshToken != refreshToken {
		return "", "", common.NewError(common.ErrCodeAuthToken, "Refresh token đã bị thu hồi", common.StatusUnauthorized, nil)
	}

	return s.issueTokenPair(ctx, user)
}

// ChangePassword đổi mật khẩu sau khi xác nhận mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *userdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if !utility.ComparePassword(user.Password, input.OldPassword) {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusBadRequest, nil)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"password": hashed},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// UpdateAccount cập nhật fullName/email của tài khoản hiện tại
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *userdto.UpdateAccountInput) (models.User, error) {
	set := map[string]interface{}{}
	if input.FullName != "" {
		set["fullName"] = input.FullName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if len(set) == 0 {
		var zero models.User
		return zero, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return updated, err
	}
	updated.Password = ""
	updated.RefreshToken = ""
	return updated, nil
}

// UpdateAvatar cập nhật URL avatar
func (s *UserService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, url string) (models.User, error) {
	return s.updateImage(ctx, userID, "avatar", url)
}

// UpdateCoverImage cập nhật URL ảnh bìa
func (s *UserService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, url string) (models.User, error) {
	return s.updateImage(ctx, userID, "coverImage", url)
}

func (s *UserService) updateImage(ctx context.Context, userID primitive.ObjectID, field string, url string) (models.User, error) {
	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{field: url},
	})
	if err != nil {
		return updated, err
	}
	updated.Password = ""
	updated.RefreshToken = ""
	return updated, nil
}

// GetChannelProfile lấy hồ sơ kênh theo username dưới góc nhìn của viewer.
// Trả về ErrNotFound nếu username không tồn tại.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (bson.M, error) {
	results, err := s.Aggregate(ctx, BuildChannelProfilePipeline(username, viewerID))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy kênh", common.StatusNotFound, nil)
	}
	return results[0], nil
}

// GetWatchHistory lấy lịch sử xem của user kèm thông tin chủ kênh mỗi video
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	results, err := s.Aggregate(ctx, BuildWatchHistoryPipeline(userID))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []bson.M{}, nil
	}

	history, ok := results[0]["watchHistory"].(bson.A)
	if !ok {
		return []bson.M{}, nil
	}

	items := make([]bson.M, 0, len(history))
	for _, item := range history {
		if doc, ok := item.(bson.M); ok {
			items = append(items, doc)
		}
	}
	return items, nil
}

// AddToWatchHistory thêm một video vào lịch sử xem ($addToSet, không trùng lặp)
func (s *UserService) AddToWatchHistory(ctx context.Context, userID primitive.ObjectID, videoID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"watchHistory": videoID},
	}
	_, err := s.UpdateById(ctx, userID, updateData)
	return err
}
